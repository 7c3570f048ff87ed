// Command booru-fetch runs one tag search and downloads the results into a
// directory without starting the desktop UI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ytget/booru-gallery/internal/booru"
	"github.com/ytget/booru-gallery/internal/browse"
	"github.com/ytget/booru-gallery/internal/config"
	"github.com/ytget/booru-gallery/internal/download"
	"github.com/ytget/booru-gallery/internal/logging"
	"github.com/ytget/booru-gallery/internal/model"
)

func main() {
	tag := flag.String("tag", "", "Tag to search for")
	limit := flag.Int("limit", config.DefaultPageSize, "Images per page")
	page := flag.Int("page", 1, "Page number, starting at 1")
	dir := flag.String("dir", "cache", "Directory to download into")
	clearDir := flag.Bool("clear", false, "Empty the directory before downloading")
	envFile := flag.String("env", ".env", "File with BOORU_* credentials")
	baseURL := flag.String("base", "", "Image board URL (default "+booru.DefaultBaseURL+")")
	verbosity := flag.Int("v", 0, "Verbosity: 0 info, 1 debug, 2 trace")
	flag.Parse()

	logging.Setup(*verbosity, "")
	logger := logging.For("booru-fetch")

	pr := model.NewPageRequest(*tag, *limit, *page)
	if err := pr.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "booru-fetch: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	env, err := config.LoadEnv(*envFile)
	if err != nil {
		logger.WithError(err).Fatal("Cannot load environment")
	}
	cfg := env.Apply(booru.Config{BaseURL: *baseURL})

	opts := browse.DefaultOptions(*dir, pr.PageSize)
	session := browse.NewSession(booru.NewClient(cfg), download.NewPipeline(cfg), opts)
	session.SetBatchCallback(func(added []string) {
		for _, path := range added {
			fmt.Println(path)
		}
	})

	report, err := session.Fetch(context.Background(), pr, *clearDir)
	if err != nil {
		logger.WithError(err).Error("Search failed")
		os.Exit(1)
	}

	logger.WithFields(log.Fields{
		"tag":  pr.Tag,
		"page": pr.Page,
	}).Infof("Done: %d attempted, %d downloaded, %d cached, %d failed in %d batches",
		report.Attempted, report.Downloaded, report.Cached, report.Failed, report.Batches)
}
