package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jeffail/gabs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/checkers-go/internal/config"
)

const (
	openingRecord = "[Result \"*\"]\n1. 2,3-3,4 5,2-4,3\n2. 3,4x5,2 6,1x4,3 *\n"
	failingRecord = "1. 2,3-3,4 2,1-3,2\n"
	cornerRecord  = "[Layout \"" + cornerLayout + "\"]\n[Result \"Red\"]\n2,5-3,6\n"
)

func input(name, text string) checkInput {
	return checkInput{name: name, r: strings.NewReader(text)}
}

func TestCheckRecords_DuplicatesAcrossFiles(t *testing.T) {
	cfg := config.NewConfigBuilder().WithWorkers(2).Build()

	var logs bytes.Buffer
	reports, ok := checkRecords(cfg, zerolog.New(&logs), []checkInput{
		input("a.chk", openingRecord),
		input("b.chk", cornerRecord+"\n"+openingRecord),
	})
	require.True(t, ok)
	require.Len(t, reports, 2)

	require.Equal(t, 1, reports[0].Passed)
	require.Equal(t, 0, reports[0].Duplicates)

	b := reports[1]
	require.Equal(t, 2, b.Passed)
	require.Equal(t, 1, b.Duplicates)
	require.False(t, b.Records[0].Duplicate)
	require.True(t, b.Records[1].Duplicate)
	require.NotEqual(t, reports[0].RunID, b.RunID)

	require.Equal(t, "Red", b.Records[0].Result)
	require.Equal(t, "ok", b.Records[0].Status)
	require.Equal(t, "8/8/8/8/6r1/8/b7/1r6 b", b.Records[0].FinalLayout)

	// the totals span both files
	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	summary, err := gabs.ParseJSON([]byte(lines[len(lines)-1]))
	require.NoError(t, err)
	require.Equal(t, "check finished", summary.Path("message").Data())
	require.Equal(t, float64(2), summary.Path("files").Data())
	require.Equal(t, float64(2), summary.Path("uniquePositions").Data())
	require.Equal(t, float64(1), summary.Path("duplicates").Data())
}

func TestCheckRecords_NoDuplicateDetection(t *testing.T) {
	cfg := config.NewConfigBuilder().WithDuplicateDetection(false).Build()

	reports, ok := checkRecords(cfg, zerolog.Nop(), []checkInput{
		input("a.chk", openingRecord+"\n"+openingRecord),
	})
	require.True(t, ok)
	require.Equal(t, 0, reports[0].Duplicates)
}

func TestCheckRecords_Failures(t *testing.T) {
	t.Run("illegal move", func(t *testing.T) {
		cfg := config.NewConfigBuilder().Build()
		reports, ok := checkRecords(cfg, zerolog.Nop(), []checkInput{input("bad.chk", failingRecord)})
		require.False(t, ok)
		require.Equal(t, 1, reports[0].Failed)
		rr := reports[0].Records[0]
		require.Equal(t, "failed", rr.Status)
		require.Contains(t, rr.Error, "bad.chk:1:12")
		require.Equal(t, 1, rr.Plies)
	})

	t.Run("wrong declared result", func(t *testing.T) {
		cfg := config.NewConfigBuilder().Build()
		text := strings.Replace(cornerRecord, `"Red"`, `"Black"`, 1)
		reports, ok := checkRecords(cfg, zerolog.Nop(), []checkInput{input("res.chk", text)})
		require.False(t, ok)
		require.Equal(t, `declared result "Black" does not match "Red"`, reports[0].Records[0].Error)
	})

	t.Run("parse error keeps earlier records", func(t *testing.T) {
		cfg := config.NewConfigBuilder().Build()
		reports, ok := checkRecords(cfg, zerolog.Nop(), []checkInput{
			input("parse.chk", openingRecord+"\n[Layout\n"),
		})
		require.False(t, ok)
		require.Contains(t, reports[0].ParseError, "parse.chk")
		require.Equal(t, 1, reports[0].Passed)
	})

	t.Run("stop on error skips later files", func(t *testing.T) {
		cfg := config.NewConfigBuilder().WithStopOnError(true).Build()
		reports, ok := checkRecords(cfg, zerolog.Nop(), []checkInput{
			input("bad.chk", failingRecord),
			input("good.chk", openingRecord),
		})
		require.False(t, ok)
		require.Len(t, reports, 1)
	})
}

func TestWriteCheckReport_Text(t *testing.T) {
	reports := []fileReport{{
		File:       "a.chk",
		Passed:     1,
		Failed:     1,
		Duplicates: 1,
		Records: []recordReport{
			{Line: 1, Status: "ok", Plies: 4},
			{Line: 5, Status: "ok", Plies: 4, Duplicate: true},
			{Line: 9, Status: "failed", Error: "boom"},
		},
	}}

	tests := []struct {
		name      string
		verbosity int
		want      string
	}{
		{"quiet", config.Quiet, "  a.chk:9: boom\n"},
		{"normal", config.Normal, "a.chk: 1 passed, 1 failed, 0 skipped, 1 duplicate(s)\n" +
			"  a.chk:5: duplicate final position\n" +
			"  a.chk:9: boom\n"},
		{"verbose", config.Verbose, "a.chk: 1 passed, 1 failed, 0 skipped, 1 duplicate(s)\n" +
			"  a.chk:1: ok after 4 plies\n" +
			"  a.chk:5: duplicate final position\n" +
			"  a.chk:9: boom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeCheckReport(&buf, reports, false, tt.verbosity))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCheckRecords_Stats(t *testing.T) {
	plain := config.NewConfigBuilder().Build()
	reports, _ := checkRecords(plain, zerolog.Nop(), []checkInput{input("a.chk", openingRecord)})
	require.Nil(t, reports[0].Records[0].Stats)

	verbose := config.NewConfigBuilder().WithVerbosity(config.Verbose).Build()
	reports, _ = checkRecords(verbose, zerolog.Nop(), []checkInput{input("a.chk", openingRecord)})
	require.Equal(t, &recordStats{Captures: 2, LongestChain: 1}, reports[0].Records[0].Stats)

	var buf bytes.Buffer
	require.NoError(t, writeCheckReport(&buf, reports, false, config.Verbose))
	require.Contains(t, buf.String(), "a.chk:1: ok after 4 plies, 2 captured, longest chain 1")

	reports, _ = checkRecords(verbose, zerolog.Nop(), []checkInput{input("bad.chk", failingRecord)})
	require.Nil(t, reports[0].Records[0].Stats)
}

func TestWriteCheckReport_JSON(t *testing.T) {
	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()
	reports, _ := checkRecords(cfg, zerolog.Nop(), []checkInput{input("a.chk", openingRecord)})

	var buf bytes.Buffer
	require.NoError(t, writeCheckReport(&buf, reports, true, config.Normal))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded), buf.String())
	require.Len(t, decoded, 1)
	require.Equal(t, "a.chk", decoded[0]["file"])
	require.EqualValues(t, 1, decoded[0]["passed"])
	require.NotEmpty(t, decoded[0]["runId"])

	records := decoded[0]["records"].([]interface{})
	stats := records[0].(map[string]interface{})["stats"].(map[string]interface{})
	require.EqualValues(t, 2, stats["captures"])
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.chk")
	bad := filepath.Join(dir, "bad.chk")
	require.NoError(t, os.WriteFile(good, []byte(openingRecord), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(failingRecord), 0o644))

	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).Build()

	require.Equal(t, 0, runCheck(cfg, zerolog.Nop(), []string{good}, strings.NewReader("")))
	require.Contains(t, out.String(), "good.chk: 1 passed")

	require.Equal(t, 1, runCheck(cfg, zerolog.Nop(), []string{good, bad}, strings.NewReader("")))
	require.Equal(t, 1, runCheck(cfg, zerolog.Nop(), []string{filepath.Join(dir, "missing.chk")}, strings.NewReader("")))
}
