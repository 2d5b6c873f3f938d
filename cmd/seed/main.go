package main

import (
	"context"
	"log"
	"os"

	"taskboard/internal/db"
	"taskboard/internal/domain"
	"taskboard/internal/dto"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// Inserts a few fixture tasks for manual testing. Idempotent: duplicate
// descriptions are skipped by the service's uniqueness check.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	svc := service.NewTaskService(repository.NewTaskRepository(pool))
	ctx := context.Background()

	fixtures := []dto.TaskCreateRequest{
		{Description: "Buy groceries", Reminder: true, Priority: priority(domain.PriorityMedium)},
		{Description: "Write monthly report", Priority: priority(domain.PriorityHigh)},
		{Description: "Water the plants", Reminder: true, Priority: priority(domain.PriorityLow)},
		{Description: "Renew passport", Priority: priority(domain.PriorityHigh)},
	}

	for _, f := range fixtures {
		t, err := svc.Create(ctx, f)
		if err != nil {
			log.Printf("skip %q: %v", f.Description, err)
			continue
		}
		log.Printf("created task id=%d description=%q priority=%s", t.ID, t.Description, t.Priority)
	}
}

func priority(p domain.Priority) *domain.Priority {
	return &p
}
