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

// Command arccompress encodes a single file with the order-0 static
// arithmetic coder.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/arcodec/arcodec"
	"github.com/arcodec/arcodec/ioformat"
)

const appHeader = "arcodec compress"

// compressor drives a single compress invocation and reports progress to
// stderr via arcodec.Listener.
type compressor struct {
	inputName  string
	outputName string
}

func (this *compressor) ProcessEvent(evt *arcodec.Event) {
	switch evt.Type() {
	case arcodec.EvtCompressionStart:
		fmt.Fprintf(os.Stderr, "compressing %s (%d bytes)\n", this.inputName, evt.Size())
	case arcodec.EvtHeaderWritten:
		fmt.Fprintf(os.Stderr, "header written (%d bytes)\n", evt.Size())
	case arcodec.EvtCompressionEnd:
		fmt.Fprintf(os.Stderr, "%s written, %d coded bits\n", this.outputName, evt.Size())
	}
}

// Main runs the compressor over args (excluding the program name) and
// returns a process exit code.
func (this *compressor) Main(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, appHeader)
		fmt.Fprintln(os.Stderr, "Usage: arccompress <input-file> <output-file>")
		return 1
	}

	this.inputName = args[0]
	this.outputName = args[1]

	if err := this.run(); err != nil {
		fmt.Fprintf(os.Stderr, "arccompress: %+v\n", err)
		return 1
	}

	return 0
}

func (this *compressor) run() error {
	in, err := os.Open(this.inputName)

	if err != nil {
		return errors.Wrapf(err, "cannot open %q", this.inputName)
	}

	defer in.Close()

	block, err := io.ReadAll(in)

	if err != nil {
		return errors.Wrapf(err, "cannot read %q", this.inputName)
	}

	out, err := os.Create(this.outputName)

	if err != nil {
		return errors.Wrapf(err, "cannot create %q", this.outputName)
	}

	c, err := ioformat.NewCompressor(out, this)

	if err != nil {
		out.Close()
		return errors.WithStack(err)
	}

	if _, err := c.Compress(block); err != nil {
		return errors.Wrapf(err, "cannot compress %q", this.inputName)
	}

	return nil
}

func main() {
	os.Exit((&compressor{}).Main(os.Args[1:]))
}
