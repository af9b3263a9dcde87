// Copyright 2025 The seqpatch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// seqpatch is a command line front end for the patch engine. It computes patches between text
// files, applies serialized patches, prints edit distances, and diffs JSON record arrays by
// field identity.
//
// The log level is controlled with the SEQPATCH_LOG environment variable (debug, info, warn,
// error); the default is error.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/seqpatch/seqpatch"
	"github.com/seqpatch/seqpatch/compare"
	"github.com/seqpatch/seqpatch/stringdiff"
)

func main() {
	initLogger()

	rootCmd := &cobra.Command{
		Use:          "seqpatch [command]",
		Short:        "Compute, serialize, and apply sequence patches",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(applyCmd())
	rootCmd.AddCommand(distanceCmd())
	rootCmd.AddCommand(recordsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogger() {
	log.SetHandler(&stderrHandler{})
	level := strings.ToLower(os.Getenv("SEQPATCH_LOG"))
	if level == "" {
		level = "error"
	}
	l, err := log.ParseLevel(level)
	if err != nil {
		l = log.ErrorLevel
	}
	log.SetLevel(l)
}

// stderrHandler writes compact single-line log entries to stderr.
type stderrHandler struct{}

func (h *stderrHandler) HandleLog(e *log.Entry) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", strings.ToUpper(e.Level.String())[:1], e.Message)
	for _, f := range e.Fields.Names() {
		fmt.Fprintf(&sb, " %s=%v", f, e.Fields.Get(f))
	}
	fmt.Fprintln(os.Stderr, sb.String())
	return nil
}

func diffCmd() *cobra.Command {
	var lines bool
	var output string
	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Compute a patch between two text files and emit it as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			after, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			var opts []seqpatch.Option
			if lines {
				opts = append(opts, stringdiff.Lines())
			}
			start := time.Now()
			p := stringdiff.FromDiff(string(before), string(after), opts...)
			log.WithFields(log.Fields{
				"spans":    len(p.Spans()),
				"distance": p.Distance(),
				"took":     time.Since(start).String(),
			}).Debug("patch computed")

			buf, err := json.Marshal(p.DTO())
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Println(string(buf))
				return nil
			}
			return os.WriteFile(output, buf, 0o644)
		},
	}
	cmd.Flags().BoolVar(&lines, "lines", false, "diff line by line instead of character by character")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the patch JSON to this file instead of stdout")
	return cmd
}

func applyCmd() *cobra.Command {
	var clamp bool
	cmd := &cobra.Command{
		Use:   "apply PATCH",
		Short: "Apply a serialized patch and print the reconstructed text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var dto stringdiff.PatchDTO
			if err := json.Unmarshal(buf, &dto); err != nil {
				return fmt.Errorf("parsing patch: %w", err)
			}
			p, err := stringdiff.FromDTO(dto)
			if err != nil {
				return err
			}
			var opts []seqpatch.Option
			if clamp {
				opts = append(opts, seqpatch.Clamp())
			}
			out, err := p.Apply(opts...)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&clamp, "clamp", false, "clamp spans that run past the base version instead of failing")
	return cmd
}

func distanceCmd() *cobra.Command {
	var lines bool
	cmd := &cobra.Command{
		Use:   "distance OLD NEW",
		Short: "Print the edit distance between two text files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			after, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			var opts []seqpatch.Option
			if lines {
				opts = append(opts, stringdiff.Lines())
			}
			fmt.Println(stringdiff.EditDistance(string(before), string(after), opts...))
			return nil
		},
	}
	cmd.Flags().BoolVar(&lines, "lines", false, "measure line by line instead of character by character")
	return cmd
}

func recordsCmd() *cobra.Command {
	var fields []string
	cmd := &cobra.Command{
		Use:   "records OLD.json NEW.json",
		Short: "Diff two JSON arrays of records by field identity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := readRecords(args[0])
			if err != nil {
				return err
			}
			after, err := readRecords(args[1])
			if err != nil {
				return err
			}

			var cmp seqpatch.Comparer[any]
			if len(fields) > 0 {
				cmp = compare.ByFields(fields...)
			} else {
				cmp = compare.Auto()
			}
			p, err := seqpatch.FromDiff(before, after, cmp)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"spans":    len(p.Spans()),
				"distance": p.Distance(),
			}).Debug("record patch computed")

			cur := 0
			for _, s := range p.Spans() {
				switch {
				case s.IsRetain():
					fmt.Printf("  retain %d\n", s.Count())
					cur += s.Count()
				case s.IsDelete():
					for _, rec := range p.Base()[cur : cur+s.Count()] {
						fmt.Printf("- %s\n", recordJSON(rec))
					}
					cur += s.Count()
				default:
					for _, rec := range s.Items() {
						fmt.Printf("+ %s\n", recordJSON(rec))
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&fields, "field", nil, "record field to compare by (repeatable); default is structural comparison")
	return cmd
}

func readRecords(path string) ([]any, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(buf) {
		return nil, fmt.Errorf("%s: not valid JSON", path)
	}
	doc := gjson.ParseBytes(buf)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%s: expected a JSON array of records", path)
	}
	recs, ok := doc.Value().([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a JSON array of records", path)
	}
	return recs, nil
}

func recordJSON(rec any) string {
	buf, err := json.Marshal(rec)
	if err != nil {
		return fmt.Sprint(rec)
	}
	return string(buf)
}
