package content

// Default returns the built-in portfolio. Every call builds a fresh value.
func Default() Portfolio {
	return Portfolio{
		Name:         "Kei",
		Title:        "Software Engineer",
		Location:     "Hong Kong",
		Availability: "Open to coffee chats",
		Email:        "hungkeiyau@gmail.com",
		Phone:        "+852 5313 6347",

		Meta: Meta{
			Title:       "Kei - Software | Electronic | Control Engineer",
			Description: "Interested in software development, electronic engineering, and control engineering.",
			Keywords:    []string{"Kei", "Software Engineer", "SCADA", "AFC", "Computer Vision", "Control Systems"},
			SiteName:    "Kei Portfolio",
			Locale:      "en_US",
		},

		Hero: Hero{
			Greeting:    "Welcome to my portfolio, I'm",
			Tagline:     "Bridging software & hardware in control",
			Description: heroDescription,
		},

		Navigation: []NavLink{
			{Label: "About", Href: "#about"},
			{Label: "Projects", Href: "#projects"},
			{Label: "Experience", Href: "#experience"},
			{Label: "Education", Href: "#education"},
			{Label: "Contact", Href: "#contact"},
		},

		Skills: Skills{
			Featured: []Skill{
				{Name: "JavaScript", Level: 95, Category: "Languages", Featured: true},
				{Name: "TypeScript", Level: 95, Category: "Languages", Featured: true},
				{Name: "C#", Level: 95, Category: "Languages", Featured: true},
				{Name: "Python", Level: 85, Category: "Languages", Featured: true},
				{Name: "PHP", Level: 85, Category: "Languages", Featured: true},
				{Name: "React", Level: 95, Category: "Frontend", Featured: true},
				{Name: "Next.js", Level: 95, Category: "Frontend", Featured: true},
				{Name: "Tailwind CSS", Level: 90, Category: "Frontend", Featured: true},
				{Name: "Flutter", Level: 85, Category: "Frontend", Featured: true},
				{Name: "Laravel", Level: 85, Category: "Backend", Featured: true},
				{Name: "Node.js", Level: 85, Category: "Backend", Featured: true},
				{Name: "Unity", Level: 95, Category: "Specialization", Featured: true},
				{Name: "Computer Vision", Level: 85, Category: "Specialization", Featured: true},
				{Name: "Docker", Level: 80, Category: "DevOps", Featured: true},
				{Name: "AWS", Level: 75, Category: "DevOps", Featured: true},
			},
			Groups: []SkillGroup{
				{Name: "Languages", Skills: []Skill{
					{Name: "Python", Level: 90}, {Name: "C++", Level: 85}, {Name: "C#", Level: 90},
					{Name: "JavaScript", Level: 85}, {Name: "TypeScript", Level: 85}, {Name: "PHP", Level: 75},
					{Name: "Kotlin", Level: 75}, {Name: "Dart", Level: 80}, {Name: "Java", Level: 75},
				}},
				{Name: "Frontend", Skills: []Skill{
					{Name: "React", Level: 95}, {Name: "Next.js", Level: 90}, {Name: "Tailwind CSS", Level: 90},
					{Name: "HTML/CSS", Level: 90}, {Name: "Flutter", Level: 90},
				}},
				{Name: "Backend", Skills: []Skill{
					{Name: "SQL", Level: 90}, {Name: "PostgreSQL", Level: 85}, {Name: "MySQL", Level: 85},
					{Name: "MS SQL", Level: 85}, {Name: "Laravel", Level: 75}, {Name: "Node.js", Level: 75},
					{Name: "MongoDB", Level: 70}, {Name: "Supabase", Level: 75},
				}},
				{Name: "Specialization", Skills: []Skill{
					{Name: "Computer Vision", Level: 90}, {Name: "AI Agent", Level: 85}, {Name: "Machine Learning", Level: 80},
					{Name: "Unity", Level: 80}, {Name: "Photon API", Level: 70}, {Name: "VR Development", Level: 65},
				}},
				{Name: "DevOps", Skills: []Skill{
					{Name: "Docker", Level: 90}, {Name: "Linux", Level: 90}, {Name: "Shell Script", Level: 85},
					{Name: "Git", Level: 90}, {Name: "Kubernetes", Level: 60}, {Name: "AWS", Level: 60},
				}},
				{Name: "Tools", Skills: []Skill{
					{Name: "VS Code", Level: 95}, {Name: "NeoVim", Level: 95}, {Name: "Android Studio", Level: 75},
				}},
			},
		},

		Projects: []Project{
			{
				ID:           "1",
				Title:        "Revamp Station Computer to Light Rail",
				Description:  lightRailDescription,
				Image:        "/image/mtr_light_rail.png",
				Technologies: []string{"Debian Linux", "Unix SunOS Migration", "Real-time Data Processing", "NFC"},
				LiveURL:      "#",
				ReferenceURL: "#",
				Featured:     true,
				Preview:      "The station computer can remotely monitor each entry/exit processor fare transactions, update fare tables, and switch between in‑service and out‑of‑service.",
			},
			{
				ID:           "2",
				Title:        "SCADA HMI & Real-time Database Configuration",
				Description:  scadaDescription,
				Image:        "/image/mcs.png",
				Technologies: []string{"MySQL", "Web", "Red Hat Linux", "Bitbucket/Stash", "Jenkins", "Git", "Shell Script", "Modbus"},
				LiveURL:      "#",
				ReferenceURL: "https://www.mtr.com.hk/en/corporate/tenders/M1218-20E.html",
				Featured:     true,
				Preview:      "The main-screen web application of the MTR SCADA Main Control System provides a centralized, real‑time overview of railway assets, alarms, and operating status across the network.",
			},
			{
				ID:           "3",
				Title:        "Surgical Counting Computer Vision System",
				Description:  surgicalDescription,
				Image:        "/image/surgical.png",
				Technologies: []string{"Computer Vision", "Machine Learning", "CUDA", "YOLO", "Flutter", "Python", "Mobile Development"},
				GithubURL:    "https://github.com/zkwokleung/surgical-counting-frontend",
				LiveURL:      "#",
				Featured:     true,
				Preview:      "The confusion matrix summarizes the performance of the trained model in classifying surgical instruments. All instruments are arranged in a dedicated washing tray, with bounding boxes labelling each detected instrument.",
			},
			{
				ID:           "4",
				Title:        "Mechanical Design in CU Robocon Team 2021",
				Description:  roboconDescription,
				Image:        "/image/robocon2.jpg",
				Technologies: []string{"SolidWorks", "CNC Machining", "3D Printing", "Arduino", "Finite State Machine", "Mechanical Design", "Robotics"},
				GithubURL:    "#",
				LiveURL:      "#",
				ReferenceURL: "https://www.cpr.cuhk.edu.hk/en/press/cuhk-robotics-team-wins-again-in-robocon-hong-kong-contest/",
				Featured:     true,
				Preview:      "Won the championship at Hong Kong Contest and represented Hong Kong in the Asia‑Pacific Robocon Contest as part of a multidisciplinary robotics team of over 20 members.",
			},
			{
				ID:           "5",
				Title:        "Personal Portfolio Website",
				Description:  portfolioDescription,
				Image:        "/image/kei_portfolio.png",
				Technologies: []string{"Go", "Gin", "HTML Templates", "Responsive Design"},
				GithubURL:    "#",
				LiveURL:      "#",
				Featured:     true,
			},
		},

		Education: []Education{
			{
				ID:          "1",
				Institution: "University of Hong Kong (HKU)",
				Degree:      "MSc in Electrical and Electronic Engineering",
				Duration:    "Sept. 2025 - May 2027",
				Location:    "Hong Kong",
				Logo:        "/image/hku_logo.jpg",
				Description: "Emphasis on identifying software-driven improvements in power and communication systems.",
				Achievements: []string{"Update Soon..."},
				Coursework: []string{
					"Image Processing and Computer Vision", "Smart Grid", "Power System", "E-commerce", "AI in Finance",
				},
				Projects: []string{"Update Soon..."},
				GPA:      "Update Soon...",
			},
			{
				ID:          "2",
				Institution: "Chinese University of Hong Kong (CUHK)",
				Degree:      "BEng in Computer Engineering",
				Duration:    "Sept. 2020 - May 2024",
				Location:    "Hong Kong",
				Logo:        "/image/cuhk_logo.jpg",
				Description: "Comprehensive engineering program focusing on computer systems, software development, and advanced computing technologies.",
				Achievements: []string{
					"During this program, I joined robotics competition, worked as 3 interns in different companies, summer exchange in Japan, and held Japanese Culture Society",
				},
				Coursework: []string{
					"C/C++", "Data Structure", "Software Engineering", "Database", "Cloud", "Operating System", "Embedded System",
				},
				Projects: []string{
					"Applied computer vision and machine learning techniques to medical instrument recognition",
					"Built responsive web application with React similar to this portfolio",
				},
				GPA:   "3.2/4.0",
				Image: "/image/robocon.jpeg",
			},
			{
				ID:          "3",
				Institution: "Institute of Vocational Education (IVE), Tsing Yi",
				Degree:      "Higher Diploma in Automotive Engineering",
				Duration:    "2020",
				Location:    "Hong Kong",
				Description: "Specialized diploma program focusing on automotive engineering principles, vehicle systems, and mechanical engineering fundamentals.",
				Achievements: []string{
					"Achieved Distinction graduation",
					"Gained hands-on experience in automotive systems and mechanical engineering",
				},
				Coursework: []string{
					"Internal Combustion Engine", "Chassis Design", "Suspension system", "Brake System",
					"Steering System", "Transmission System", "Electric Vehicle Technology",
				},
				Projects: []string{"Autonomous parking with edge detection via Arduino, Raspberry Pi and OpenCV"},
				GPA:      "3.6/4.0",
			},
		},

		Experience: []Experience{
			{
				ID:          "1",
				Company:     "MTR",
				Position:    "Operations Engineering Associate",
				Duration:    "Aug 2025 - Present",
				Location:    "Hong Kong",
				Logo:        "/image/mtr_logo.jpg",
				Description: "Develop Universal Station Computer for Automatic Fare Collection (AFC) System. Ensure the data transaction between smart card processing terminal, entry/exit gates, ticket machines, to the IT backend, Clearing House and Octopus Cards Ltd",
				Achievements: []string{
					"Revamped legacy station computer system from Unix SunOS to Debian Linux for Light Rail",
					"Developed innovative ways to real-time monitor the transaction data",
				},
				Technologies: []string{"Debian Linux", "Unix SunOS Migration", "Real-time Data Processing", "NFC"},
			},
			{
				ID:          "2",
				Company:     "Hitachi Rail",
				Position:    "Associate Software Engineer",
				Duration:    "May 2024 - Aug 2025",
				Location:    "Hong Kong",
				Logo:        "/image/hitachirail_logo.jpg",
				Description: "Configured control system for rail tunnel ventilation, building services, signaling, and power lines",
				Achievements: []string{
					"Designed and built Human Machine Interface (HMI) Real-time Database and SCADA control system",
					"Automated configuration processes via Shell script, Jenkins, and Git",
					"Prepared software specification, I/O mapping and logic",
				},
				Technologies: []string{"SCADA", "HMI", "Real-time Database", "MySQL", "Shell Script", "Jenkins", "Git", "Bitbucket/Stash", "Red Hat Linux"},
			},
			{
				ID:           "3",
				Company:      "MTR",
				Position:     "Summer Intern",
				Duration:     "June - July 2023",
				Location:     "Hong Kong",
				Logo:         "/image/mtr_logo.jpg",
				Achievements: []string{"Developed solutions to locate trains from signaling data"},
				Technologies: []string{"Python", "Data Extraction", "Railway Signal Control"},
			},
			{
				ID:           "4",
				Company:      "AECOM",
				Position:     "Programmer Trainee (Part-time)",
				Duration:     "Sept. 2022 - May 2023",
				Location:     "Hong Kong",
				Logo:         "/image/aecom_logo.jpg",
				Achievements: []string{"Converted ArcGIS and AutoCAD data into MS SQL database"},
				Technologies: []string{"C#", ".NET", "MS SQL", "ArcGIS", "AutoCAD", "Database Design", "Data Migration"},
			},
			{
				ID:       "5",
				Company:  "HKT",
				Position: "IT Intern",
				Duration: "June - Aug. 2022",
				Location: "Hong Kong",
				Logo:     "/image/hkt_logo.jpg",
				Achievements: []string{
					"Experimented with Kafka message queue system on Docker on Linux",
					"Deployed Confluent Kafka, Schema-Registry, Control-Centre, Rest-Proxy, and Connect",
					"Validated the functionality with configurations and Python",
					"Extracted data via Rest-Proxy and Debezium Connector from Google Finance and MySQL",
					"Gained experience in distributed systems and message queuing",
				},
				Technologies: []string{
					"Kafka", "Confluent Kafka", "Schema-Registry", "Control-Centre", "Rest-Proxy", "Debezium Connector",
					"Docker", "Linux", "Python", "MySQL", "Message Queue", "Distributed Systems",
				},
			},
			{
				ID:       "6",
				Company:  "Kong Kee Motor (光記汽車工程)",
				Position: "Vehicle Mechanic",
				Duration: "Jan. 2017 - Aug. 2020",
				Location: "Hong Kong",
				Achievements: []string{
					"Performed vehicle maintenance and repair operations",
					"Diagnosed and resolved automotive system issues",
				},
				Technologies: []string{"Automotive Systems", "Vehicle Diagnostics", "Mechanical Engineering"},
			},
		},

		Social: []SocialLink{
			{Name: "GitHub", URL: "https://github.com/yorkei04", Icon: "github"},
			{Name: "LinkedIn", URL: "https://www.linkedin.com/in/kei-yau/", Icon: "linkedin"},
			{Name: "Instagram", URL: "https://www.instagram.com/yorkei04/", Icon: "instagram"},
			{Name: "Email", URL: "mailto:hungkeiyau@gmail.com", Icon: "email"},
		},

		About: About{
			Title:                 "About Me",
			Subtitle:              "A journey across mechanical, electrical, and software engineering.",
			WhatIDoTitle:          "What I Do",
			CoreTechnologiesTitle: "Core Technologies",
			Paragraphs:            []string{aboutJourney, aboutStudies, aboutToday},
			Skills: []string{
				"AFC (Automatic Fare Collection) systems",
				"SCADA and HMI system configuration",
				"Real-time database design and implementation",
				"Web application development",
				"Hardware & Software system integration",
			},
			CurrentFocus: Focus{
				Title:       "Currently Exploring",
				Description: "Distributed control system design, real-time data processing, and integration of AI in critical infrastructure systems.",
			},
			CoreTechnologies: []Skill{
				{Name: "Linux", Level: 90}, {Name: "Python", Level: 90}, {Name: "Computer Vision", Level: 90},
				{Name: "SQL", Level: 90}, {Name: "Shell Script", Level: 85}, {Name: "C++", Level: 85},
				{Name: "Docker", Level: 90}, {Name: "Git", Level: 90}, {Name: "Jenkins", Level: 90},
				{Name: "Go", Level: 80},
			},
			Stats: []Stat{
				{Key: "experience", Value: "2+", Label: "Years Experience"},
				{Key: "projects", Label: "Projects Involved"},
			},
		},

		Showcases: []Showcase{
			{
				Name:    "robocon-about",
				Image:   "/image/robocon.jpeg",
				Alt:     "Robocon Hong Kong Champion 2021",
				Caption: roboconAboutCaption,
				Anchor:  AnchorSection,
				Ref:     "about",
				Align:   "center",
			},
			{
				Name:    "light-rail",
				Image:   "/image/mtr_light_rail.png",
				Alt:     "Revamp Station Computer to Light Rail",
				Caption: "Revamped the legacy station computer system from Unix SunOS to Debian Linux with a modern new UI for station operators",
				Anchor:  AnchorProject,
				Ref:     "1",
				Align:   "top",
			},
			{
				Name:    "mcs",
				Image:   "/image/mcs.png",
				Alt:     "MCS System",
				Caption: "The main screen webapp of MTR SCADA Main Control System",
				Anchor:  AnchorProject,
				Ref:     "2",
				Align:   "top",
			},
			{
				Name:    "surgical",
				Image:   "/image/surgical.png",
				Alt:     "Surgical Counting Computer Vision System",
				Caption: "High-precision surgical counting computer vision model achieving over 99% accuracy, deployed to a cross-platform mobile application",
				Anchor:  AnchorProject,
				Ref:     "3",
				Align:   "top",
			},
			{
				Name:    "robocon",
				Image:   "/image/robocon3.jpg",
				Alt:     "Mechanical Design in Robocon 2021",
				Caption: "Won the championship and represent Hong Kong to participate Asia-Pacific Robocon Contest.",
				Anchor:  AnchorProject,
				Ref:     "4",
				Align:   "top",
			},
		},

		Mentions: []Mention{
			{Text: "Andrew SZE-TO", URL: "https://github.com/zkwokleung"},
		},

		Sidebar: Figure{
			Image:   "/image/mtr_occ.jpeg",
			Alt:     "MTR OCC",
			Caption: occCaption,
		},
	}
}
