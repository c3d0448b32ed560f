// nodewatch reads newline-delimited record events from stdin, feeds them
// through a shape tracker, and prints the per-type example objects and any
// type conflicts when the stream ends.
//
// Each input line is {"type": "Widget", "op": "add"|"del", "node": {...}}.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/valyala/fastjson"

	"github.com/siegeai/nodeshape/conflicts"
	"github.com/siegeai/nodeshape/ingest"
)

func main() {
	if err := setupLogging(getEnv("NODESHAPE_LOG", "info")); err != nil {
		slog.Error("could not init logging", "err", err)
		os.Exit(1)
	}
	if err := run(); err != nil {
		slog.Error("nodewatch failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	tracker := ingest.NewTracker()

	var p fastjson.Parser
	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}

		v, err := p.ParseBytes(sc.Bytes())
		if err != nil {
			slog.Warn("skipping unparsable line", "line", line, "err", err)
			continue
		}

		typeName := string(v.GetStringBytes("type"))
		if typeName == "" {
			slog.Warn("skipping record without a type", "line", line)
			continue
		}
		node := v.Get("node")
		if node == nil {
			slog.Warn("skipping record without a node", "line", line)
			continue
		}

		switch op := string(v.GetStringBytes("op")); op {
		case "", "add":
			err = tracker.Add(typeName, node)
		case "del":
			err = tracker.Delete(typeName, node)
		default:
			slog.Warn("skipping unknown op", "line", line, "op", op)
			continue
		}
		if err != nil {
			slog.Warn("record rejected", "line", line, "err", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	collector := &conflicts.Collector{}
	out := struct {
		Examples  map[string]map[string]any `json:"examples"`
		Conflicts []conflicts.Conflict      `json:"conflicts"`
	}{
		Examples: tracker.ExampleObjects(collector),
	}
	out.Conflicts = collector.Conflicts()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func setupLogging(level string) error {
	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(level))
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(h))
	return err
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
