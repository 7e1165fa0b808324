package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/granblue-tools/hensei-transfer/internal/clients/hensei"
	"github.com/granblue-tools/hensei-transfer/internal/entities/party"
	"github.com/granblue-tools/hensei-transfer/internal/errors"
	"github.com/granblue-tools/hensei-transfer/internal/notify"
	"github.com/granblue-tools/hensei-transfer/internal/orchestrators/transfer"
	redisclient "github.com/granblue-tools/hensei-transfer/internal/redis"
	"github.com/granblue-tools/hensei-transfer/internal/repositories/resolution"
)

// teamSiteOrigin is the public front-end the canonical team path hangs off.
const teamSiteOrigin = "https://granblue.team"

var (
	importStaticData string
	importCacheAddr  string
)

var importCmd = &cobra.Command{
	Use:   "import [document]",
	Short: "Recreate a portable team document as a new granblue.team party",
	Long: `Import reads a portable team document and drives the granblue.team API
until a new party mirrors it, then prints the party's URL.

The API token is read from HENSEI_API_TOKEN and the API root can be
overridden with HENSEI_API_URL. The job master data the site embeds in its
pages is not searchable, so it must be supplied as a JSON file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importStaticData, "static-data", "",
		"JSON file with the site's job master data (required)")
	importCmd.Flags().StringVar(&importCacheAddr, "cache-redis", "",
		"redis address for the entity resolution cache (optional)")
	_ = importCmd.MarkFlagRequired("static-data")
}

func runImport(cmd *cobra.Command, args []string) error {
	input := ""
	if len(args) == 1 {
		input = args[0]
	}

	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	doc, err := party.Parse(data)
	if err != nil {
		return err
	}

	staticData, err := loadStaticData(importStaticData)
	if err != nil {
		return err
	}

	envCfg, err := hensei.LoadEnvConfig()
	if err != nil {
		return err
	}

	client, err := hensei.New(&hensei.Config{
		BaseURL:     envCfg.BaseURL,
		Credentials: hensei.StaticCredentials(envCfg.Token),
	})
	if err != nil {
		return err
	}

	resolutions, err := openResolutionCache(importCacheAddr)
	if err != nil {
		return err
	}

	svc, err := transfer.NewOrchestrator(&transfer.Config{
		Client:      client,
		Resolutions: resolutions,
		Notifier:    notify.Slog{},
	})
	if err != nil {
		return err
	}

	out, err := svc.Import(cmd.Context(), &transfer.ImportInput{
		Document:   doc,
		StaticData: staticData,
	})
	if err != nil {
		return err
	}

	fmt.Println(teamSiteOrigin + out.Path)
	return nil
}

func loadStaticData(path string) (*transfer.StaticData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var static transfer.StaticData
	if err := json.Unmarshal(data, &static); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument,
			"static data file is not valid JSON")
	}
	return &static, nil
}

func openResolutionCache(addr string) (resolution.Repository, error) {
	if addr == "" {
		return nil, nil
	}

	client, err := redisclient.NewClient(addr, nil)
	if err != nil {
		return nil, err
	}
	slog.Debug("resolution cache enabled", "addr", addr)

	return resolution.NewRedis(&resolution.RedisConfig{Client: client})
}
