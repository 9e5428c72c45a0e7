package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/12306ylg/files2image/config"
	"github.com/12306ylg/files2image/convert"
	"github.com/12306ylg/files2image/imgio"
	"github.com/12306ylg/files2image/util"
)

const (
	AppFolder      = ".files2image"
	ConfigFilename = "config.yaml"
	LogFilename    = "log.log"
)

func main() {

	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	conf := loadConfig()
	logger := util.NewLogger(&conf.Logger)

	switch os.Args[1] {
	case "encode":
		if len(os.Args) < 3 {
			help()
			return
		}
		src := util.FixUnicode(os.Args[2])
		dst := util.DeriveOutputName(src, conf.Encoding.DefaultFormat)
		if len(os.Args) > 3 {
			dst = util.FixUnicode(os.Args[3])
		}
		checkDestination(dst, conf)
		if err := convert.EncodeFile(src, dst, logger); err != nil {
			fatal("Failed to encode file:", err)
		}
		fmt.Printf("Encoded %s -> %s\n", src, dst)
	case "decode":
		if len(os.Args) < 3 {
			help()
			return
		}
		src := util.FixUnicode(os.Args[2])
		dst := util.DeriveOutputName(src, "bin")
		if len(os.Args) > 3 {
			dst = util.FixUnicode(os.Args[3])
		}
		checkDestination(dst, conf)
		if err := convert.DecodeFile(src, dst, logger); err != nil {
			fatal("Failed to decode image:", err)
		}
		fmt.Printf("Decoded %s -> %s\n", src, dst)
	case "formats":
		fmt.Println("Supported image formats:", strings.Join(imgio.Formats, ", "))
	default:
		help()
	}
}

func checkDestination(dst string, conf *config.FullConfig) {
	if conf.Encoding.Overwrite {
		return
	}
	if _, err := os.Stat(dst); err == nil {
		fatal("Destination already exists:", dst)
	}
}

// loadConfig reads the configuration from the user's home folder,
// creating a default one on first run.
func loadConfig() *config.FullConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	appFolder := filepath.Join(home, AppFolder)

	if _, err = os.ReadDir(appFolder); err != nil {
		// folder unexistent, creating it.
		if err = os.Mkdir(appFolder, 0760); err != nil {
			fatal("Failed to create app directory in user's home folder:", err)
		}
	}

	configFile := filepath.Join(appFolder, ConfigFilename)
	conf, err := config.LoadConfig(configFile)
	if err != nil {
		conf = config.DefaultConfig(filepath.Join(appFolder, LogFilename))
		if err = config.SaveConfig(configFile, conf); err != nil {
			fatal("Failed to save default configuration:", err)
		}
	}
	return conf
}

func fatal(args ...any) {
	fmt.Println(args...)
	os.Exit(-1)
}

func help() {
	line := `Usage: ./files2image <command> [arguments]

The following commands are supported:
	encode <file> [image]	hide a file inside a fresh lossless image
	decode <image> [file]	recover the original file from an image
	formats			list supported image formats
`

	fmt.Printf("%s", line)
}
