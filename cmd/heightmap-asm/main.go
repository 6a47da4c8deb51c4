// Command heightmap-asm compiles a collision map into the lookup tables used
// by the ROM build: an assembler data section and a matching C header.
//
// Without --input the built-in demo tileset profiles are compiled.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/hillside/heightmap"
	"github.com/lixenwraith/hillside/level"
)

type options struct {
	input    string
	asmOut   string
	header   string
	dumpJSON string
}

func main() {
	var opts options
	pflag.StringVarP(&opts.input, "input", "i", "", "collision map JSON (default: built-in tileset)")
	pflag.StringVarP(&opts.asmOut, "out", "o", "collision.s", "assembler output")
	pflag.StringVar(&opts.header, "header", "collision.h", "C header output, empty to skip")
	pflag.StringVar(&opts.dumpJSON, "dump-json", "", "also write the source collision map as JSON")
	pflag.Parse()

	table, err := run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "heightmap-asm: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d tile ids, %d profiles -> %s\n", table.TileCount(), table.ProfileCount(), opts.asmOut)
}

func run(opts options) (*heightmap.Table, error) {
	cm := level.DemoCollision()
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, fmt.Errorf("open collision map: %w", err)
		}
		cm, err = heightmap.DecodeJSON(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opts.input, err)
		}
	}

	table, err := cm.Compile()
	if err != nil {
		return nil, err
	}

	if err := writeFile(opts.asmOut, table.WriteAsm); err != nil {
		return nil, err
	}
	if opts.header != "" {
		if err := writeFile(opts.header, table.WriteHeader); err != nil {
			return nil, err
		}
	}
	if opts.dumpJSON != "" {
		if err := writeFile(opts.dumpJSON, cm.EncodeJSON); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
