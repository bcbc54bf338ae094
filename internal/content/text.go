package content

// Long-form copy kept out of Default so the record stays readable.
var (
	heroDescription = `Software engineer at MTR, developing station computers for Automatic Fare Collection (AFC) systems. Formerly configured SCADA control systems at Hitachi Rail for railway. Passionate about integrating software, electronics, and real-time control systems that power critical infrastructure.

This portfolio showcases my experience and projects. The site itself is a hands-on exercise in building a responsive web application, built on top of a framework originally developed by my friend, Andrew SZE-TO.`

	aboutJourney = `My journey began at the auto repair shop, where I worked as a vehicle mechanic. Through hands-on experience, I observed a fundamental shift: modern vehicles, whether mechanical or electrical, were increasingly controlled by software and electronics. This realization sparked my transition to computer engineering.`

	aboutStudies = `I pursued Computer Engineering at the Chinese University of Hong Kong. Initially, I focused on mechatronics, participating in robotics competitions and winning the Robocon Hong Kong Contest 2021. However, I soon discovered that software held far greater potential for improving and controlling complex systems.`

	aboutToday = `Today, I work as a software engineer across various companies, integrating software and hardware in control systems. From developing SCADA and HMI systems for railway control at Hitachi Rail to building universal station computers for AFC systems at MTR, I specialize in bridging the gap between physical infrastructure and software solutions.`

	lightRailDescription = `Revamped the legacy station computer system from Unix SunOS to Debian Linux with a modern UI for station operators. Ensured secure, reliable communication and transaction data flow between entry/exit processors, contactless smart card processor terminals, ticket machines, IT backend, and financial clearing house, while improved user experience for light rail operations.`

	scadaDescription = `Configured the MTR main control system under M1218-20E for rail tunnel ventilation, building services, signaling, power equipment, etc. Automated the configuration via Shell script, Jenkins and Git. Prepared the software specification, I/O mapping and logic.`

	surgicalDescription = `Work with my friend Andrew, collaborated with Blueinno Technology HK to train a surgical counting computer vision model achieving over 99% accuracy. Successfully deployed the model to a cross-platform mobile application built using Flutter for real-world medical applications.`

	roboconDescription = `Design and built pick-and-place mechanism for the arrow-shoot with Solidwork, CNC machine, 3D printer, Arduino finite state machine. Won the championship and represent Hong Kong to participate Asia-Pacific Robocon Contest.`

	portfolioDescription = `The site you're looking at is a responsive web application that showcases my experience, featured projects, and background. It serves as both a living CV and a technical playground where I experiment with web development and the clear presentation of engineering work.`

	occCaption = `The Operations Control Center features a large, integrated visual display wall that provides operators with real-time system status and control interfaces for SCADA, signaling, and automatic fare collection (AFC) systems, enabling continuous monitoring and rapid response`

	roboconAboutCaption = `While studying Computer Engineering, I explored hardware–software integration in robotics and helped my university team win Robocon Hong Kong 2021. I designed the pick‑and‑place mechanism for the arrow‑shooter.`
)
