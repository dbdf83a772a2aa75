package main

import (
	"flag"
	"os"

	"Scoped_String"

	"github.com/sirupsen/logrus"
)

// A small key=value scanner built on views: the buffer is read exactly
// once into memory and every key and value below is a window into it.
const sampleConf = `# storage settings
max_bytes = 8192

cleanup = 60s
	# indented comment
mode=lru2
not a setting
`

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	lookup := flag.String("key", "mode", "setting to look up after scanning")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	buf := []byte(sampleConf)
	keys := make([]Scoped_String.View, 0, 8)
	values := make([]Scoped_String.View, 0, 8)

	rest := Scoped_String.New(buf)
	for !rest.IsNull() {
		nl := rest.Find('\n')
		if nl == 0 {
			// blank line
			rest = rest.Substr(1)
			continue
		}

		var line Scoped_String.View
		if nl < 0 {
			line = rest
			rest = Scoped_String.View{}
		} else {
			line = rest.SubstrLen(0, nl)
			rest = rest.Substr(nl + 1)
		}

		line.Trim()
		Scoped_String.Dump("line", &line)
		if line.StartsWithByte('#') {
			continue
		}

		eq := line.Find('=')
		if eq <= 0 {
			logrus.Warnf("skipping malformed line %q", line.String())
			continue
		}

		key := line.SubstrLen(0, eq)
		value := line.Substr(eq + 1)
		key.Trim()
		value.Trim()

		keys = append(keys, key)
		values = append(values, value)
		logrus.Infof("setting %q = %q (hash %#08x)", key.String(), value.String(), key.Hash())
	}

	want := Scoped_String.NewString(*lookup)
	for i := range keys {
		if Scoped_String.Equals(keys[i], want) {
			logrus.Infof("lookup %q -> %q", want.String(), values[i].String())
			return
		}
	}
	logrus.Errorf("lookup %q: not found", want.String())
	os.Exit(1)
}
