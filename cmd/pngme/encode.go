package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/WesleyTran0/pngme/internal/pngfile"
	"github.com/WesleyTran0/pngme/pkg/png"
)

func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "Append a chunk carrying a hidden message to a PNG file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "PNG file to encode into",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"t"},
				Usage:    "4-character chunk type code (e.g. ruSt)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "message",
				Aliases:  []string{"m"},
				Usage:    "message to hide in the chunk payload",
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
			typ, err := png.ParseChunkTypeString(cmd.String("type"))
			if err != nil {
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

			chunk := png.NewChunk(typ, []byte(cmd.String("message")))
			file.AppendChunk(chunk)

			out := cmd.String("output")
			if out == "" {
				out = path
			}
			if err := pngfile.Write(out, file.Bytes()); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			log.Info("encoded message",
				"type", typ.String(),
				"length", chunk.Length(),
				"output", out,
			)
			return nil
		},
	}
}
