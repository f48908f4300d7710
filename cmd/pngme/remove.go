package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/WesleyTran0/pngme/internal/pngfile"
	"github.com/WesleyTran0/pngme/pkg/png"
)

func removeCmd() *cli.Command {
	return &cli.Command{
		Name:  "remove",
		Usage: "Remove the first chunk of the given type and rewrite the file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "PNG file to edit",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"t"},
				Usage:    "4-character chunk type code to remove",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output path (defaults to rewriting the input file)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := LoadConfig()
			log := newLogger(cmd, cfg)

			path := cmd.String("file")
			code := cmd.String("type")

			data, err := pngfile.Read(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			file, err := png.ParseFile(data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			chunk, err := file.RemoveFirstChunk(code)
			if err != nil {
				return err
			}

			out := cmd.String("output")
			if out == "" {
				out = path
			}
			if err := pngfile.Write(out, file.Bytes()); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			log.Info("removed chunk",
				"type", code,
				"length", chunk.Length(),
				"output", out,
			)
			fmt.Println(chunk.String())
			return nil
		},
	}
}
