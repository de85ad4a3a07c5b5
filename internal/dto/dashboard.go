package dto

// DashboardStats is the stats card block at the top of the dashboard.
type DashboardStats struct {
	TotalCourses     int    `json:"totalCourses"`
	TotalAssignments int    `json:"totalAssignments"`
	Completed        int    `json:"completed"`
	Pending          int    `json:"pending"`
	CompletionRate   int    `json:"completionRate"`
	GPA              string `json:"gpa"`
	TotalCredits     int    `json:"totalCredits"`
}

// DashboardCourse is a course tile with its near-term workload.
type DashboardCourse struct {
	CourseID      int     `json:"courseId"`
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	CurrentGrade  float64 `json:"currentGrade"`
	LetterGrade   string  `json:"letterGrade,omitempty"`
	UpcomingCount int     `json:"upcomingCount"`
}

// DashboardResponse is the composed dashboard payload.
type DashboardResponse struct {
	Stats               DashboardStats    `json:"stats"`
	UpcomingAssignments []AssignmentView  `json:"upcomingAssignments"`
	RecentlyCompleted   []AssignmentView  `json:"recentlyCompleted"`
	Courses             []DashboardCourse `json:"courses"`
}
