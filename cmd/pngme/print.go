package main

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/WesleyTran0/pngme/internal/pngfile"
	"github.com/WesleyTran0/pngme/pkg/png"
)

type chunkSummary struct {
	Index            int    `json:"index"`
	Type             string `json:"type"`
	Length           uint32 `json:"length"`
	CRC              uint32 `json:"crc"`
	Critical         bool   `json:"critical"`
	Public           bool   `json:"public"`
	ReservedBitValid bool   `json:"reserved_bit_valid"`
	SafeToCopy       bool   `json:"safe_to_copy"`
}

func printCmd() *cli.Command {
	return &cli.Command{
		Name:  "print",
		Usage: "Print the chunk table of a PNG file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "PNG file to inspect",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit the chunk table as JSON",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("file")
			data, err := pngfile.Read(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			file, err := png.ParseFile(data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			chunks := file.Chunks()
			if cmd.Bool("json") {
				table := make([]chunkSummary, 0, len(chunks))
				for i, c := range chunks {
					table = append(table, summarize(i, c))
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(table)
			}

			fmt.Printf("%s: %d chunks\n", path, len(chunks))
			for i, c := range chunks {
				typ := c.Type()
				fmt.Printf("%3d  %s  length=%-8d crc=%08x  critical=%-5v public=%-5v safe_to_copy=%v\n",
					i, typ.String(), c.Length(), c.CRC(),
					typ.Critical(), typ.Public(), typ.SafeToCopy())
			}
			return nil
		},
	}
}

func summarize(idx int, c png.Chunk) chunkSummary {
	typ := c.Type()
	return chunkSummary{
		Index:            idx,
		Type:             typ.String(),
		Length:           c.Length(),
		CRC:              c.CRC(),
		Critical:         typ.Critical(),
		Public:           typ.Public(),
		ReservedBitValid: typ.ReservedBitValid(),
		SafeToCopy:       typ.SafeToCopy(),
	}
}
