package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/12306ylg/files2image/codec"
	"github.com/12306ylg/files2image/imgio"
	"github.com/12306ylg/files2image/util"
)

/*
 * package convert contains the two operations the tool exposes: turning
 * an arbitrary file into a lossless image and recovering the original
 * file from such an image. Everything is materialized in memory first,
 * so a failed conversion never leaves a partial destination file behind.
 */

var ErrSourceUnavailable = errors.New("Source file is unavailable.")

func EncodeFile(src string, dst string, logger *util.Logger) error {
	payload, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("%w (%s)", ErrSourceUnavailable, err.Error())
	}

	img, err := codec.Encode(payload)
	if err != nil {
		logger.LogError(err)
		return err
	}
	data, err := imgio.Encode(filepath.Ext(dst), img)
	if err != nil {
		logger.LogError(err)
		return err
	}
	if err := os.WriteFile(dst, data, 0660); err != nil {
		logger.LogError(err)
		return err
	}

	bounds := img.Bounds()
	logger.LogInfo(fmt.Sprintf("encoded %d bytes of %s into a %dx%d image %s",
		len(payload), src, bounds.Dx(), bounds.Dy(), dst))
	return nil
}

func DecodeFile(src string, dst string, logger *util.Logger) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("%w (%s)", ErrSourceUnavailable, err.Error())
	}

	img, err := imgio.Decode(data)
	if err != nil {
		logger.LogError(err)
		return err
	}
	payload, err := codec.Decode(img)
	if err != nil {
		logger.LogError(err)
		return err
	}
	if err := os.WriteFile(dst, payload, 0660); err != nil {
		logger.LogError(err)
		return err
	}

	logger.LogInfo(fmt.Sprintf("recovered %d bytes from %s into %s",
		len(payload), src, dst))
	return nil
}
