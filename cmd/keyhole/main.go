package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/keyholelabs/keyhole"
	"github.com/keyholelabs/keyhole/snapshot"
)

type wordCmd struct {
	Sub   string   `help:"Rendering to show for the sub reference." default:"None"`
	Words []string `arg:"" help:"Owned words, hex (0x...) or decimal."`
}

func (c *wordCmd) Run() error {
	for _, raw := range c.Words {
		word, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid owned word %q: %v", raw, err)
		}
		fmt.Println(keyhole.DecodePending(word, keyhole.Text(c.Sub)).Render())
	}
	return nil
}

type snapCmd struct {
	Path string `arg:"" help:"Snapshot file, container or JSON."`
}

func (c *snapCmd) Run() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	snap, err := snapshot.Load(data)
	if err != nil {
		return fmt.Errorf("read snapshot %s: %v", c.Path, err)
	}
	for _, line := range snap.Render(keyhole.DefaultRegistry()) {
		fmt.Println(line)
	}
	return nil
}

type cli struct {
	Word wordCmd `cmd:"" help:"Decode raw 64-bit handle words."`
	Snap snapCmd `cmd:"" help:"Render every slot of a store snapshot."`
}

func main() {
	log.SetFlags(0)

	var args cli
	ctx := kong.Parse(&args,
		kong.Name("keyhole"),
		kong.Description("Decode the reactive runtime's packed value handles into readable text."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		log.Fatal(err)
	}
}
