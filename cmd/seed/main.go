// Command seed fills the database with synthetic users and posts so the
// analytics endpoints have something to aggregate in development.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"pulseboard/pkg/config"
	"pulseboard/pkg/database"
	"pulseboard/pkg/logging"
	"pulseboard/pkg/models"
)

var postStatuses = []string{
	models.StatusPosted, models.StatusPosted, models.StatusPosted, models.StatusPosted,
	"scheduled", "failed",
}

func main() {
	users := flag.Int("users", 25, "number of users to create")
	maxPosts := flag.Int("max-posts", 40, "maximum posts per user per platform")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	flag.Parse()

	logger := logging.NewLoggerWithService("pulseboard-seed")
	config.LoadEnv(logger)

	if *seed != 0 {
		gofakeit.Seed(*seed)
	}

	dbConfig := database.DefaultConfig()
	dbConfig.URL = config.RequireEnv("DATABASE_URL")
	db := database.MustConnect(dbConfig, logger)
	defer func() { _ = db.Close() }()

	now := time.Now()
	totalPosts := 0

	for i := 0; i < *users; i++ {
		registered := gofakeit.DateRange(now.AddDate(-1, 0, 0), now)

		var userID int64
		err := db.QueryRow(
			`INSERT INTO users (email, is_active, date_created) VALUES ($1, $2, $3) RETURNING id`,
			gofakeit.Email(), gofakeit.Number(0, 9) > 0, registered,
		).Scan(&userID)
		if err != nil {
			logger.WithError(err).Fatal("Failed to insert user")
		}

		for _, platform := range models.AllPlatforms {
			// Not every user is on every platform
			if gofakeit.Number(0, 2) == 0 {
				continue
			}
			n := gofakeit.Number(0, *maxPosts)
			for j := 0; j < n; j++ {
				if err := insertPost(db, platform, userID, registered, now); err != nil {
					logger.WithError(err).WithField("platform", platform.String()).Fatal("Failed to insert post")
				}
				totalPosts++
			}
		}
	}

	logger.WithFields(logging.Fields{
		"users": *users,
		"posts": totalPosts,
	}).Info("Seeding complete")
}

func insertPost(db database.PostgresConn, platform models.Platform, userID int64, registered, now time.Time) error {
	createdAt := gofakeit.DateRange(registered, now)
	status := postStatuses[gofakeit.Number(0, len(postStatuses)-1)]
	errorMessage := ""
	if status == "failed" {
		errorMessage = gofakeit.HackerPhrase()
	}

	contentCol, _ := platform.ContentColumn()
	cols := []string{"user_id", "created_at", "status", "error_message", contentCol}
	vals := []interface{}{userID, createdAt, status, errorMessage, gofakeit.Sentence(gofakeit.Number(3, 25))}

	for _, extra := range platform.ExtraColumns() {
		cols = append(cols, extra)
		switch extra {
		case "image_url", "video_url":
			vals = append(vals, gofakeit.URL())
		case "title":
			vals = append(vals, gofakeit.Sentence(4))
		case "subreddit":
			vals = append(vals, gofakeit.Word())
		case "board_name":
			vals = append(vals, gofakeit.Word())
		}
	}

	query := fmt.Sprintf("INSERT INTO %s (", platform.Table())
	placeholders := ""
	for i, col := range cols {
		if i > 0 {
			query += ", "
			placeholders += ", "
		}
		query += col
		placeholders += fmt.Sprintf("$%d", i+1)
	}
	query += ") VALUES (" + placeholders + ")"

	_, err := db.Exec(query, vals...)
	return err
}
