package content

const (
	photoURL             = "https://placehold.co/192x192/0D0D0D/F3F4F6?text=Your+Photo"
	photoFallbackURL     = "https://placehold.co/192x192/0D0D0D/F3F4F6?text=Image+Error"
	projectImageFallback = "https://placehold.co/400x250/1F2937/D1D5DB?text=Image+Error"

	// placeholder until the projects are published
	unpublished = "#"
)

// Default returns the compiled-in portfolio. Each call builds fresh slices.
func Default() *Portfolio {
	return &Portfolio{
		Profile:              defaultProfile(),
		Skills:               defaultSkills(),
		Projects:             defaultProjects(),
		ProjectImageFallback: projectImageFallback,
		Contact:              defaultContact(),
		Tagline:              "Built with Go and Bubble Tea",
	}
}

func defaultProfile() Profile {
	return Profile{
		Name:     "Sai Santhosh Kumar Vedala",
		Headline: "Data Analyst | Business Analyst | MS in IT & Project Management",
		Bio: []string{
			"Hi, I’m **Sai Santhosh Kumar Vedala**, a data enthusiast with an aviation backbone. I started out in Aircraft Maintenance Engineering, working hands-on with live aircraft and seeing up close how much safety, reliability, and operations depend on good data from maintenance logs and parts life cycles to scheduling and telemetry. That experience taught me precision, systems thinking, and the cost of bad decisions.",
			"To go deeper into the data itself, I completed a Master’s in Information Technology and Project Management. Since then, I have focused on turning messy, real-world data into clear, decision-ready insights. I build interactive dashboards in **Power BI** and **Tableau**, write robust **SQL** for modeling and analysis, and use **Python (pandas/NumPy)** to automate repetitive tasks and streamline workflows. I enjoy connecting the dots between business questions, data constraints, and practical outcomes.",
			"What I love most is solving problems at the intersection of business and analytics: clarifying requirements, defining KPIs, finding root causes, and telling the story with simple visuals and crisp narratives. Whether it is inventory and supply chain KPIs, product performance, or customer behavior, my goal is the same: deliver insights people can act on.",
			"**Tools & Focus**: Power BI, Tableau, SQL (PostgreSQL/SQL Server), Python (pandas/NumPy), Excel, Git · Data modeling, DAX, KPI design, dashboard UX, automation, and stakeholder communication.",
			"**What is next**: I am pursuing roles as a Data Analyst / Business Analyst, where I can partner with teams to solve real business and data problems faster, cleaner, and with measurable impact.",
			"Thank you for taking the time to learn about me. Feel free to browse my portfolio to see some of my featured projects, and do not hesitate to reach out if you would like to connect or discuss how I can add value to your team.",
			"**Connect with me**: LinkedIn | GitHub",
		},
		Quote:            "Without data, you’re just another person with an opinion.",
		QuoteAuthor:      "W. Edwards Deming",
		PhotoURL:         photoURL,
		PhotoFallbackURL: photoFallbackURL,
	}
}

func defaultSkills() []SkillCategory {
	return []SkillCategory{
		{
			Name: "Analytics & Visualization",
			Entries: []SkillEntry{
				Text("Power BI"), Text("Tableau"), Text("Looker"), Text("Cognos"), Text("Excel (Pivot Tables, Charts)"),
				Text("KPI Reporting"), Text("DAX"), Text("Dashboard Automation"), Text("EDA"), Text("Data Cleaning"),
			},
		},
		{
			Name: "Programming & Databases",
			Entries: []SkillEntry{
				Text("Python (Pandas, NumPy)"), Text("R"), Text("SQL (PostgreSQL, SQL Server, MySQL, SQLite)"),
				Text("VBA"), Text("pgAdmin 4"), Text("Git"), Text("GitHub"),
			},
		},
		{
			Name: "Business Analysis & Tools",
			Entries: []SkillEntry{
				Text("BRD/FRD Documentation"), Text("UAT Planning & Testing"), Text("Agile (Scrum, Kanban)"),
				Text("Stakeholder Communication"), Text("Salesforce"), Text("Lucidchart"), Text("JIRA"), Text("Confluence"),
				Text("Microsoft SharePoint"), Text("Microsoft Office Suite"),
			},
		},
		{
			Name: "Certifications",
			Entries: []SkillEntry{
				Link("Data Analysis with Python", "https://courses.cognitiveclass.ai/certificates/3bb156c630994bc588f1142ed8383d9f"),
				Link("Google Data Analytics", "https://www.coursera.org/account/accomplishments/professional-cert/XJ0I74ZQGXUB?utm_source=link&utm_medium=certificate&utm_content=cert_image&utm_campaign=sharing_cta&utm_product=prof"),
				Link("IBM Business Analyst", "https://www.coursera.org/account/accomplishments/professional-cert/9ECEE6E3M12W?utm_source=link&utm_medium=certificate&utm_content=cert_image&utm_campaign=sharing_cta&utm_product=prof"),
				Link("Microsoft Certified: Power BI Data Analyst Associate", "https://learn.microsoft.com/en-us/users/saisanthoshkumarvedala-8384/credentials/b71a035e768f7f00?ref=https%3A%2F%2Fwww.linkedin.com%2F"),
				Link("Agile Project Management Foundation", "https://www.linkedin.com/learning/certificates/19539982356dc6a0a21dd6a484e36fac928c806bd06bf92e3b6ae0b3919aed8b?trk=share_certificate"),
				Link("Business Analysis Foundations", "https://www.linkedin.com/learning/certificates/7efc17c0f69a7f994093f5c7453994f8cb24ceaf6daa99b4c3f5c3ad53425710?trk=share_certificate"),
				Link("Data Analytics: 1 Foundations", "https://www.linkedin.com/learning/certificates/89b78d24d939b00e8679ce2031d5611425d309528f939a520d29adb4f97b1d9d?trk=share_certificate"),
				Link("Six Sigma Foundations", "https://www.linkedin.com/learning/certificates/e06cda0ba62bc9032f48f0f852655622209558fe4a2b6c11c1724f21f05eeb7e?trk=share_certificate"),
			},
		},
	}
}

func defaultProjects() []Project {
	return []Project{
		{
			Title:       "Supply Chain Dashboard",
			Description: "Interactive dashboard analyzing inventory turnover, shipping efficiency, and cost breakdown. Implemented KPI tracking and vendor performance insights for supply chain optimization.",
			Tags:        []string{"Tableau", "KPI Reporting", "Supply Chain"},
			ImageURL:    "https://placehold.co/400x250/1F2937/D1D5DB?text=Supply+Chain",
			LiveLink:    unpublished,
			RepoLink:    unpublished,
		},
		{
			Title:       "Olympics Performance Dashboard",
			Description: "Dashboard visualizing athlete trends, medal distribution, and country-wise performance. Used advanced DAX for time-based insights and ranking measures.",
			Tags:        []string{"Power BI", "DAX", "Data Visualization"},
			ImageURL:    "https://placehold.co/400x250/1F2937/D1D5DB?text=Olympics+Dashboard",
			LiveLink:    unpublished,
			RepoLink:    unpublished,
		},
		{
			Title:       "AdventureWorks Sales Dashboard",
			Description: "Retail dashboard tracking sales, product returns, and customer segments. Built dynamic KPI visuals using structured transactional data.",
			Tags:        []string{"Power BI", "KPIs", "Retail Analytics"},
			ImageURL:    "https://placehold.co/400x250/1F2937/D1D5DB?text=Sales+Dashboard",
			LiveLink:    unpublished,
			RepoLink:    unpublished,
		},
		{
			Title:       "Tip Calculator",
			Description: "CLI-based tool calculating per-person bill split with adjustable tip logic. Focused on user input handling and rounding precision.",
			Tags:        []string{"Python", "CLI", "Logic"},
			ImageURL:    "https://placehold.co/400x250/1F2937/D1D5DB?text=Tip+Calculator",
			LiveLink:    unpublished,
			RepoLink:    unpublished,
		},
		{
			Title:       "Treasure Island Game",
			Description: "Text-based interactive game using conditional branches and logical flows. Designed for beginner-level storytelling with command-line navigation.",
			Tags:        []string{"Python", "Text Game", "Storytelling"},
			ImageURL:    "https://placehold.co/400x250/1F2937/D1D5DB?text=Treasure+Island",
			LiveLink:    unpublished,
			RepoLink:    unpublished,
		},
	}
}

func defaultContact() Contact {
	return Contact{
		Email:    "saisanthoshvedala2000@gmail.com",
		Phone:    "813-709-0498",
		PhoneURI: "tel:+18137090498",
		Profiles: []SocialLink{
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/sai-santhosh-v-371705209/"},
			{Label: "GitHub", URL: "https://github.com/Saisanthoshkumarvedala"},
		},
	}
}
