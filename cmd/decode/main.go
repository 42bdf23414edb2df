package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"drift-indexer-sol/internal/logic/driftv2"

	"github.com/mr-tron/base58"
	"gopkg.in/yaml.v3"
)

var (
	data     = flag.String("data", "", "instruction data, base58 or hex (0x prefix optional)")
	encoding = flag.String("enc", "auto", "input encoding: auto | base58 | hex")
	list     = flag.Bool("list", false, "list all known instructions and exit")
)

type decodedOutput struct {
	Name          string              `yaml:"name"`
	Discriminator string              `yaml:"discriminator"`
	Args          driftv2.Instruction `yaml:"args"`
}

func main() {
	flag.Parse()

	var err error
	switch {
	case *list:
		err = writeCatalog(os.Stdout)
	case *data != "":
		err = run(os.Stdout, *data, *encoding)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, input, enc string) error {
	raw, err := parseData(input, enc)
	if err != nil {
		return err
	}
	ix, err := driftv2.Decode(raw)
	if err != nil {
		return err
	}

	out := decodedOutput{
		Name:          ix.Name(),
		Discriminator: fmt.Sprintf("0x%016x", uint64(ix.Discriminator())),
		Args:          ix,
	}
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(out); err != nil {
		return err
	}
	return e.Close()
}

// parseData auto 模式下 0x 前缀或纯十六进制串按 hex 解析，否则按 base58
func parseData(input, enc string) ([]byte, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.New("empty data")
	}
	switch enc {
	case "hex":
		return hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(input, "0x"), "0X"))
	case "base58":
		return base58.Decode(input)
	case "auto":
		if trimmed, ok := strings.CutPrefix(strings.ToLower(input), "0x"); ok {
			return hex.DecodeString(trimmed)
		}
		if len(input)%2 == 0 {
			if b, err := hex.DecodeString(input); err == nil {
				return b, nil
			}
		}
		return base58.Decode(input)
	default:
		return nil, fmt.Errorf("unknown encoding %q", enc)
	}
}

func writeCatalog(w io.Writer) error {
	ds := driftv2.Discriminators()
	sort.Slice(ds, func(i, j int) bool { return ds[i].String() < ds[j].String() })

	entries := make([]map[string]string, 0, len(ds))
	for _, d := range ds {
		entries = append(entries, map[string]string{
			"name":          d.String(),
			"discriminator": fmt.Sprintf("0x%016x", uint64(d)),
		})
	}
	return yaml.NewEncoder(w).Encode(entries)
}
