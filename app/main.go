package main

import (
	"fmt"
	"os"
	"time"

	appetize "github.com/jlee37/github-action-appetize"
	"github.com/jlee37/github-action-appetize/types"
	"github.com/jlee37/github-action-appetize/utils"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	config, cfgErr := appetize.NewConfigFromEnv()
	if cfgErr != nil {
		fmt.Println("❌ Failure loading config:", cfgErr)
		os.Exit(1)
	}

	start := time.Now()
	app, err := config.Deploy()
	if err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}

	fmt.Printf("✨ Success! App available under public key %s %s\n", app.PublicKey, utils.FormatTime(time.Since(start)))
	if app.PublicURL != "" {
		fmt.Println("🌐 Take a peek over " + app.PublicURL)
	}

	if outErr := writeOutputs(app); outErr != nil {
		fmt.Println("⚠️ Failed to write action outputs:", outErr)
	}
}

// writeOutputs appends the action outputs for later workflow steps. A
// no-op outside of GitHub Actions.
func writeOutputs(app *types.AppResponse) error {
	outPath := os.Getenv("GITHUB_OUTPUT")
	if outPath == "" {
		return nil
	}

	f, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "publicKey=%s\n", app.PublicKey)
	if app.PublicURL != "" {
		fmt.Fprintf(f, "publicURL=%s\n", app.PublicURL)
	}

	return nil
}
