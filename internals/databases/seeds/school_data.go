package seeds

// Katalog school & course — data referensi statis, di-seed sekali.
type seedCourse struct {
	Name       string
	DegreeType string
}

type seedSchool struct {
	Name    string
	Color   string
	Courses []seedCourse
}

var schoolCatalogue = []seedSchool{
	{
		Name:  "School of Education",
		Color: "#1d4ed8",
		Courses: []seedCourse{
			{"BA (Hons) English Language and TESOL", "Undergraduate"},
			{"BA (Hons) Early Childhood Studies", "Undergraduate"},
			{"MA Education (TESOL): Teaching English to Speakers of Other Languages", "Postgraduate"},
			{"MA Inclusion and Special Educational Needs & Disability (ISEND)", "Postgraduate"},
			{"MA in Educational Leadership & Management", "Postgraduate"},
		},
	},
	{
		Name:  "School of Psychology",
		Color: "#7c3aed",
		Courses: []seedCourse{
			{"BSc (Hons) Psychology & Counselling", "Undergraduate"},
			{"BSc (Hons) Applied Psychology", "Undergraduate"},
			{"MSc Psychology of Addictions and Behavioural Change", "Postgraduate"},
			{"Professional Doctorate Counselling Psychology", "Postgraduate"},
			{"MSc Occupational Psychology", "Postgraduate"},
			{"MSc Forensic Psychology (with Psychotherapy)", "Postgraduate"},
			{"MSc Counselling and Psychology in Educational Settings", "Postgraduate"},
			{"MSc Applied Psychology: Health Psychology and Counselling", "Postgraduate"},
			{"MSc Applied Psychology: Clinical Psychology and Counselling", "Postgraduate"},
			{"MSc Integrative Counselling & Psychotherapy", "Postgraduate"},
		},
	},
	{
		Name:  "Business School",
		Color: "#b91c1c",
		Courses: []seedCourse{
			{"BA (Hons) Marketing, PR & Advertising", "Undergraduate"},
			{"BSc (Hons) Economics & Finance", "Undergraduate"},
			{"BA (Hons) Business Management (Marketing)", "Undergraduate"},
			{"BA (Hons) Business Management (Finance)", "Undergraduate"},
			{"BA (Hons) Business Management", "Undergraduate"},
			{"BA (Hons) Business Management (Human Resource Management)", "Undergraduate"},
			{"BA (Hons) Business Management (Supply Chain & Logistics)", "Undergraduate"},
			{"MSc Digital Marketing", "Postgraduate"},
			{"MBA Global", "Postgraduate"},
			{"Msc Marketing Management", "Postgraduate"},
			{"MBA Global Finance", "Postgraduate"},
			{"MSc Human Resource Management", "Postgraduate"},
		},
	},
	{
		Name:  "School of Arts & Design",
		Color: "#db2777",
		Courses: []seedCourse{
			{"BA (Hons) Fashion Design & Marketing", "Undergraduate"},
			{"MA Dramatherapy", "Postgraduate"},
		},
	},
	{
		Name:  "School of Health & Sport Sciences",
		Color: "#15803d",
		Courses: []seedCourse{
			{"BSc (Hons) Sports Science and Coaching", "Undergraduate"},
			{"BSc (Hons) Physiotherapy", "Undergraduate"},
			{"MSc Strength and Conditioning", "Postgraduate"},
		},
	},
	{
		Name:  "School of Shipping",
		Color: "#0e7490",
		Courses: []seedCourse{
			{"BA (Hons) Business Management (Shipping)", "Undergraduate"},
			{"MBA Global Shipping", "Postgraduate"},
		},
	},
	{
		Name:  "School of Computing",
		Color: "#4338ca",
		Courses: []seedCourse{
			{"BSc (Hons) Computer Games Programming", "Undergraduate"},
			{"BSc (Hons) Computer Science", "Undergraduate"},
			{"BSc (Hons) Cyber Security", "Undergraduate"},
			{"MSc Cyber Security", "Postgraduate"},
			{"MSc Big Data Analytics", "Postgraduate"},
		},
	},
	{
		Name:  "School of Tourism and Hospitality",
		Color: "#d97706",
		Courses: []seedCourse{
			{"BA (Hons) International Hospitality Management", "Undergraduate"},
			{"BA (Hons) Professional Culinary Arts", "Undergraduate"},
			{"MA Leading Tourism and Hospitality: Luxury Management & Guest Experience", "Postgraduate"},
			{"MA Leading Tourism & Hospitality: Event Management", "Postgraduate"},
			{"MA Leading Tourism & Hospitality", "Postgraduate"},
		},
	},
	{
		Name:  "School of Engineering",
		Color: "#57534e",
		Courses: []seedCourse{
			{"MEng / BEng (Hons) Mechanical Engineering & Design", "Undergraduate"},
			{"MEng / BEng (Hons) Civil Engineering & Construction", "Undergraduate"},
			{"MSc Sustainable Architecture & Healthy Buildings", "Postgraduate"},
			{"MSc Renewable Energy Engineering", "Postgraduate"},
			{"MSc Mechanical Engineering and Design", "Postgraduate"},
			{"MSc Civil Engineering and Construction", "Postgraduate"},
		},
	},
}
