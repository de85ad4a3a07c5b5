// Command seed_remote loads the development fixture set into a hosted
// record-store deployment through the same client the API uses, so the
// seeded records always carry the schema the service reads back.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/studytrack/studytrack-api/internal/repository"
	"github.com/studytrack/studytrack-api/internal/repository/memory"
	"github.com/studytrack/studytrack-api/internal/repository/remote"
)

func main() {
	var (
		base    string
		apiKey  string
		timeout time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:4000", "Record-store base URL")
	flag.StringVar(&apiKey, "api-key", "", "Record-store API key")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	client := remote.NewClient(remote.Config{
		BaseURL: base,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: timeout},
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seed(ctx, client.Stores(), time.Now().UTC()); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	fmt.Println("seed complete")
}

// seed copies the in-memory fixture set into dst. Courses and assignments
// go first because the destination assigns their IDs; grade and assignment
// references are remapped to the created ones.
func seed(ctx context.Context, dst repository.Stores, now time.Time) error {
	db := memory.NewDB()
	db.Seed(now)
	src := db.Stores()

	courses, err := src.Courses.List(ctx)
	if err != nil {
		return err
	}
	courseIDs := make(map[int]int, len(courses))
	for _, course := range courses {
		created, err := dst.Courses.Create(ctx, &course)
		if err != nil {
			return fmt.Errorf("course %q: %w", course.Name, err)
		}
		courseIDs[course.ID] = created.ID
	}

	assignments, err := src.Assignments.List(ctx)
	if err != nil {
		return err
	}
	assignmentIDs := make(map[int]int, len(assignments))
	for _, assignment := range assignments {
		assignment.CourseID = courseIDs[assignment.CourseID]
		created, err := dst.Assignments.Create(ctx, &assignment)
		if err != nil {
			return fmt.Errorf("assignment %q: %w", assignment.Title, err)
		}
		assignmentIDs[assignment.ID] = created.ID
	}

	grades, err := src.Grades.List(ctx)
	if err != nil {
		return err
	}
	for _, grade := range grades {
		grade.CourseID = courseIDs[grade.CourseID]
		for i, id := range grade.AssignmentIDs {
			grade.AssignmentIDs[i] = assignmentIDs[id]
		}
		if _, err := dst.Grades.Create(ctx, &grade); err != nil {
			return fmt.Errorf("grade for course %d: %w", grade.CourseID, err)
		}
	}

	return nil
}
