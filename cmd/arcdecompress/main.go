/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command arcdecompress decodes a single file produced by arccompress.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/arcodec/arcodec"
	"github.com/arcodec/arcodec/ioformat"
)

const appHeader = "arcodec decompress"

type decompressor struct {
	inputName  string
	outputName string
}

func (this *decompressor) ProcessEvent(evt *arcodec.Event) {
	switch evt.Type() {
	case arcodec.EvtDecompressionStart:
		fmt.Fprintf(os.Stderr, "decompressing %s\n", this.inputName)
	case arcodec.EvtHeaderRead:
		fmt.Fprintf(os.Stderr, "header read (%d bytes)\n", evt.Size())
	case arcodec.EvtDecompressionEnd:
		fmt.Fprintf(os.Stderr, "%s written, %d bytes\n", this.outputName, evt.Size())
	}
}

// Main runs the decompressor over args (excluding the program name) and
// returns a process exit code.
func (this *decompressor) Main(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, appHeader)
		fmt.Fprintln(os.Stderr, "Usage: arcdecompress <input-file> <output-file>")
		return 1
	}

	this.inputName = args[0]
	this.outputName = args[1]

	if err := this.run(); err != nil {
		fmt.Fprintf(os.Stderr, "arcdecompress: %+v\n", err)
		return 1
	}

	return 0
}

func (this *decompressor) run() error {
	in, err := os.Open(this.inputName)

	if err != nil {
		return errors.Wrapf(err, "cannot open %q", this.inputName)
	}

	d, err := ioformat.NewDecompressor(in, this)

	if err != nil {
		in.Close()
		return errors.WithStack(err)
	}

	block, err := d.Decompress()

	if err != nil {
		return errors.Wrapf(err, "cannot decompress %q", this.inputName)
	}

	out, err := os.Create(this.outputName)

	if err != nil {
		return errors.Wrapf(err, "cannot create %q", this.outputName)
	}

	defer out.Close()

	if _, err := out.Write(block); err != nil {
		return errors.Wrapf(err, "cannot write %q", this.outputName)
	}

	return nil
}

func main() {
	os.Exit((&decompressor{}).Main(os.Args[1:]))
}
