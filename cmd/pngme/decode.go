package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/WesleyTran0/pngme/internal/pngfile"
	"github.com/WesleyTran0/pngme/pkg/png"
)

func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "Print the message hidden in the first chunk of the given type",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "PNG file to read",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"t"},
				Usage:    "4-character chunk type code to look up",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("file")
			code := cmd.String("type")
			if _, err := png.ParseChunkTypeString(code); err != nil {
				return fmt.Errorf("chunk type: %w", err)
			}

			data, err := pngfile.Read(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			file, err := png.ParseFile(data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			chunk, ok := file.ChunkByType(code)
			if !ok {
				return fmt.Errorf("%w: no %q chunk in %s", png.ErrChunkNotFound, code, path)
			}
			text, err := chunk.DataText()
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}
