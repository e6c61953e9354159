package advisor

const (
	FallbackText      = "Sorry, I couldn't generate a response right now. Please try again later."
	fallbackTimetable = "Could not generate a schedule."
)

// FallbackQuiz is served when a quiz cannot be generated.
func FallbackQuiz() []QuizQuestion {
	const keyAnswer = "To provide a stable identity for elements, helping React identify which items have changed, are added, or are removed."
	return []QuizQuestion{
		{
			Question: `In React, what is the primary purpose of a "key" prop when rendering a list of elements?`,
			Options: []string{
				"To style the element uniquely.",
				keyAnswer,
				"To use as a reference for event handlers.",
				`To set the HTML "key" attribute.`,
			},
			CorrectAnswer: keyAnswer,
		},
		{
			Question:      "Which TypeScript feature allows you to create a new type from a union of several types?",
			Options:       []string{"Interface", "Enum", "Union Type (|)", "Generic"},
			CorrectAnswer: "Union Type (|)",
		},
	}
}

// FallbackCareerPath is served when a career path cannot be generated.
func FallbackCareerPath() *CareerPath {
	return &CareerPath{
		Title:       "Frontend Developer",
		Description: "A guided path to becoming a job-ready Frontend Developer, focusing on modern web technologies and best practices.",
		AvgSalary:   "$95,000/year",
		Demand:      DemandHigh,
		LearningPath: []CareerPathStep{
			{Step: 1, Title: "UX/UI Design Foundations", CourseID: 8, Duration: "6 Weeks"},
			{Step: 2, Title: "Advanced React & TypeScript", CourseID: 7, Duration: "15 Weeks"},
			{Step: 3, Title: "Cloud Computing & DevOps Fundamentals", CourseID: 2, Duration: "8 Weeks"},
		},
	}
}

// FallbackTimetable is served when a timetable cannot be generated.
func FallbackTimetable() Timetable {
	return Timetable{"Error": {fallbackTimetable}}
}
