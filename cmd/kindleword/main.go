// Command kindleword turns a Kindle "My Clippings.txt" file into CSV
// flashcard decks, one file per book, translating each highlighted word
// or phrase and recording exported terms so reruns skip them.
//
// Exit codes: 0 = success (including "nothing new to export"),
// 1 = runtime error, 2 = unusable input file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/kindleword/internal/app"
	"github.com/heartmarshall/kindleword/internal/pipeline"
)

func main() {
	file := flag.String("file", "My Clippings.txt", "path to the Kindle clippings file")
	userID := flag.Int64("user", 1, "user whose export history suppresses repeats")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := app.Run(ctx, app.Options{ClippingsPath: *file, UserID: *userID})
	if err != nil {
		slog.Error("run failed", slog.String("error", err.Error()))
		if pipeline.IsInputError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	fmt.Println(summary.Message())
	if summary.Interrupted {
		os.Exit(1)
	}
}
