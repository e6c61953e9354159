package course

const (
	videoA   = "https://videos.pexels.com/video-files/3214466/3214466-hd_1280_720_24fps.mp4"
	videoB   = "https://videos.pexels.com/video-files/853874/853874-hd_1280_720_25fps.mp4"
	dummyPDF = "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf"
)

// Sponsors
var (
	SponsorHubexus        = Sponsor{ID: 1, Name: "Hubexus"}
	SponsorTechProjectHub = Sponsor{ID: 2, Name: "TechProjectHub"}
	SponsorTruScholar     = Sponsor{ID: 3, Name: "TruScholar"}
)

func video(id, module int, title, desc, duration, url string) SyllabusItem {
	return SyllabusItem{ID: id, Module: module, Title: title, Description: desc, Duration: duration, ContentType: ContentVideo, ContentURL: url}
}

func pdf(id, module int, title, desc string) SyllabusItem {
	return SyllabusItem{ID: id, Module: module, Title: title, Description: desc, Duration: "N/A", ContentType: ContentPDF, ContentURL: dummyPDF}
}

func price(p float64) *float64 { return &p }

func sponsor(s Sponsor) *Sponsor { return &s }

// SeedCatalog returns the default catalog: five sponsored (free) courses & three paid ones.
func SeedCatalog() Directory {
	return NewCatalog(SeedCourses()...)
}

func SeedCourses() []Course {
	return []Course{
		{
			ID:           1,
			Title:        "AI Automation for Enterprises",
			Instructor:   "Dr. Eva Rostova",
			InstructorID: "instructor123",
			Sponsor:      sponsor(SponsorHubexus),
			Level:        LevelAdvanced,
			Duration:     "12 Weeks",
			Rating:       4.9,
			Enrollments:  1250,
			IsFeatured:   true,
			ThumbnailURL: "https://picsum.photos/seed/ai-automation/400/225",
			Tags:         []string{"AI", "Enterprise", "Automation"},
			Status:       StatusPublished,
			Description:  "A deep dive into implementing AI-driven automation solutions in large-scale business environments. Covers RPA, intelligent workflows, and machine learning model deployment.",
			Syllabus: []SyllabusItem{
				video(101, 1, "Introduction to Enterprise AI", "Understanding the landscape of AI in business.", "1 Week", videoA),
				video(102, 2, "Robotic Process Automation (RPA)", "Mastering UIPath and Automation Anywhere.", "3 Weeks", videoB),
				pdf(103, 2, "RPA Project Guide", "Download the project guide for the RPA section."),
				video(104, 3, "Intelligent Workflow Design", "Building smart, data-driven business processes.", "4 Weeks", videoA),
				video(105, 4, "Deploying ML Models at Scale", "From training to production with MLOps.", "4 Weeks", videoB),
			},
		},
		{
			ID:           2,
			Title:        "Cloud Computing & DevOps Fundamentals",
			Instructor:   "Johnathan Peck",
			InstructorID: "instructor456",
			Sponsor:      sponsor(SponsorTechProjectHub),
			Level:        LevelBeginner,
			Duration:     "8 Weeks",
			Rating:       4.8,
			Enrollments:  3400,
			IsFeatured:   true,
			ThumbnailURL: "https://picsum.photos/seed/cloud-devops/400/225",
			Tags:         []string{"Cloud", "DevOps", "AWS"},
			Status:       StatusPublished,
			Description:  "Learn the foundational concepts of cloud computing and DevOps. This course provides hands-on experience with AWS, Docker, and CI/CD pipelines.",
			Syllabus: []SyllabusItem{
				video(201, 1, "Cloud Concepts (AWS)", "EC2, S3, and VPC fundamentals.", "2 Weeks", videoA),
				pdf(202, 1, "AWS Cheatsheet", "Key terms and services."),
				video(203, 2, "Containerization with Docker", "Build, ship, and run applications anywhere.", "2 Weeks", videoB),
				video(204, 3, "CI/CD with Jenkins & GitHub Actions", "Automating the software delivery lifecycle.", "3 Weeks", videoA),
				video(205, 4, "Infrastructure as Code (Terraform)", "Managing cloud resources programmatically.", "1 Week", videoB),
			},
		},
		{
			ID:           3,
			Title:        "Blockchain-based Certification Systems",
			Instructor:   "Maria Alverez",
			Sponsor:      sponsor(SponsorTruScholar),
			Level:        LevelIntermediate,
			Duration:     "6 Weeks",
			Rating:       4.9,
			Enrollments:  890,
			IsFeatured:   true,
			ThumbnailURL: "https://picsum.photos/seed/blockchain-certs/400/225",
			Tags:         []string{"Blockchain", "Web3", "Security"},
			Status:       StatusPendingApproval,
			Description:  "Explore how blockchain technology is revolutionizing credentialing. Build a decentralized application to issue and verify digital certificates.",
			Syllabus: []SyllabusItem{
				video(301, 1, "Blockchain & Ethereum Basics", "Understanding distributed ledgers and smart contracts.", "2 Weeks", videoA),
				video(302, 2, "Solidity for Smart Contracts", "Programming on the Ethereum Virtual Machine.", "2 Weeks", videoB),
				video(303, 3, "Building a Verifiable Credential DApp", "Final project to create a certification system.", "2 Weeks", videoA),
			},
		},
		{
			ID:           4,
			Title:        "Project-Based Machine Learning Bootcamp",
			Instructor:   "Kenji Tanaka",
			Sponsor:      sponsor(SponsorTechProjectHub),
			Level:        LevelIntermediate,
			Duration:     "16 Weeks",
			Rating:       4.9,
			Enrollments:  2100,
			ThumbnailURL: "https://picsum.photos/seed/ml-bootcamp/400/225",
			Tags:         []string{"Machine Learning", "Python", "Data Science"},
			Status:       StatusPublished,
			Description:  "A hands-on bootcamp where you build a portfolio of machine learning projects, from predictive modeling to natural language processing.",
			Syllabus: []SyllabusItem{
				video(401, 1, "Data Cleaning and Preprocessing", "Preparing data for machine learning.", "3 Weeks", videoA),
				video(402, 2, "Supervised Learning Models", "Regression and Classification projects.", "5 Weeks", videoB),
				video(403, 3, "Unsupervised Learning", "Clustering and Dimensionality Reduction.", "4 Weeks", videoA),
				video(404, 4, "Introduction to Deep Learning", "Building neural networks with TensorFlow.", "4 Weeks", videoB),
			},
		},
		{
			ID:           5,
			Title:        "Business Intelligence with DataOps",
			Instructor:   "Dr. Eva Rostova",
			InstructorID: "instructor123",
			Sponsor:      sponsor(SponsorHubexus),
			Level:        LevelIntermediate,
			Duration:     "10 Weeks",
			Rating:       4.7,
			Enrollments:  980,
			ThumbnailURL: "https://picsum.photos/seed/bi-dataops/400/225",
			Tags:         []string{"BI", "DataOps", "Analytics"},
			Status:       StatusPendingApproval,
			Description:  "Learn how to build and manage robust data pipelines for business intelligence. This course covers data warehousing, ETL processes, and modern DataOps principles.",
			Syllabus: []SyllabusItem{
				video(501, 1, "Data Warehousing Concepts", "Designing schemas for analytics.", "2 Weeks", videoA),
				video(502, 2, "ETL with Python and Airflow", "Automating data extraction, transformation, and loading.", "4 Weeks", videoB),
				video(503, 3, "Data Visualization with Tableau", "Creating impactful business dashboards.", "3 Weeks", videoA),
				video(504, 4, "DataOps Principles", "CI/CD for data pipelines.", "1 Week", videoB),
			},
		},
		{
			ID:           6,
			Title:        "Introduction to Python for Data Science",
			Instructor:   "Dr. Angela Yu",
			Price:        price(49.99),
			Level:        LevelBeginner,
			Duration:     "10 Weeks",
			Rating:       4.8,
			Enrollments:  15234,
			ThumbnailURL: "https://picsum.photos/seed/python-ds/400/225",
			Tags:         []string{"Python", "Data Science", "Programming"},
			Status:       StatusPublished,
			Description:  "The complete beginner's guide to Python programming for data science. Learn variables, loops, functions, and key data science libraries like Pandas and NumPy.",
			Syllabus: []SyllabusItem{
				video(601, 1, "Python Basics", "Variables, Data Types, and Operators.", "2 Weeks", videoA),
				pdf(602, 1, "Workbook: Python Basics", "Practice exercises for module 1."),
				video(603, 2, "Control Flow", "Loops and Conditional Statements.", "2 Weeks", videoB),
				video(604, 3, "Data Structures", "Lists, Dictionaries, and Tuples.", "2 Weeks", videoA),
				video(605, 4, "Intro to Pandas & NumPy", "Manipulating and analyzing data.", "4 Weeks", videoB),
			},
		},
		{
			ID:           7,
			Title:        "Advanced React & TypeScript",
			Instructor:   "Maximilian Schwarzmüller",
			Price:        price(99.99),
			Level:        LevelAdvanced,
			Duration:     "15 Weeks",
			Rating:       4.9,
			Enrollments:  8750,
			ThumbnailURL: "https://picsum.photos/seed/react-ts/400/225",
			Tags:         []string{"React", "TypeScript", "Web Development"},
			Status:       StatusPublished,
			Description:  "Take your React skills to the next level. This course covers advanced patterns, state management with Redux Toolkit, performance optimization, and building large-scale applications with TypeScript.",
			Syllabus: []SyllabusItem{
				video(701, 1, "TypeScript for React Devs", "Mastering types, interfaces, and generics.", "3 Weeks", videoA),
				video(702, 2, "Advanced Hooks & Patterns", "Custom hooks, render props, and HOCs.", "4 Weeks", videoB),
				video(703, 3, "State Management with Redux Toolkit", "Efficient and scalable state management.", "4 Weeks", videoA),
				video(704, 4, "Performance Optimization", "Memoization, code splitting, and profiling.", "4 Weeks", videoB),
			},
		},
		{
			ID:           8,
			Title:        "UX/UI Design Foundations",
			Instructor:   "Dr. Eva Rostova",
			InstructorID: "instructor123",
			Price:        price(29.99),
			Level:        LevelBeginner,
			Duration:     "6 Weeks",
			Rating:       4.7,
			Enrollments:  11500,
			ThumbnailURL: "https://picsum.photos/seed/ux-ui/400/225",
			Tags:         []string{"UX", "UI", "Design"},
			Status:       StatusDraft,
			Description:  "Learn the fundamentals of User Experience (UX) and User Interface (UI) design. This course covers design thinking, wireframing, prototyping, and user testing.",
			Syllabus: []SyllabusItem{
				video(801, 1, "The Design Thinking Process", "Empathize, Define, Ideate, Prototype, Test.", "1 Week", videoA),
				video(802, 2, "User Research & Personas", "Understanding your users.", "1 Week", videoB),
				pdf(803, 2, "Persona Template", "Download the template to create user personas."),
				video(804, 3, "Wireframing & Prototyping in Figma", "From low-fidelity sketches to interactive prototypes.", "3 Weeks", videoA),
				video(805, 4, "Usability Testing", "Validating your designs with real users.", "1 Week", videoB),
			},
		},
	}
}
