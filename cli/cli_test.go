package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"qrt2csv/qrt"
	"qrt2csv/qrt/ddirectory"
	"qrt2csv/qrt/drecord"
	"qrt2csv/qrt/qrttest"
)

type RunTestSuite struct {
	Dir       string
	InputPath string
	OutputDir string
	R         *require.Assertions
	suite.Suite
}

func (suite *RunTestSuite) SetupTest() {
	suite.R = suite.Require()
	suite.Dir = suite.T().TempDir()
	suite.InputPath = filepath.Join(suite.Dir, "snapshot.qrt")
	suite.OutputDir = filepath.Join(suite.Dir, "csvdir")

	bs := qrttest.NewBuilder(2, 0x400, ddirectory.DescriptorSizeUnaligned).
		AddEntry("TESTX", 2, qrttest.Positions(0, 0)).
		AddEntry("IDLE", 0, qrttest.Positions()).
		PutRecord(0, 0, drecord.Record{EpochSeconds: 1401271200, LastPrice: 100.5}).
		PutRecord(0, 1, drecord.Record{EpochSeconds: 1401271203, LastPrice: 101.0}).
		Bytes()
	suite.R.NoError(os.WriteFile(suite.InputPath, bs, 0o644))
}

func (suite *RunTestSuite) run(args Args) (string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := Run(args, stdout, stderr)
	return stdout.String(), err
}

func (suite *RunTestSuite) readLines(path string) []string {
	bs, err := os.ReadFile(path)
	suite.R.NoError(err)
	return strings.Split(strings.TrimSuffix(string(bs), "\n"), "\n")
}

func (suite *RunTestSuite) TestWritesCSV() {
	stdout, err := suite.run(Args{Input: suite.InputPath, Output: suite.OutputDir})
	suite.R.NoError(err)

	csvPath := filepath.Join(suite.OutputDir, "TESTX.csv")
	suite.R.Contains(stdout, csvPath)
	suite.R.Equal(
		[]string{
			drecord.Header(),
			"2014-05-28-10-00-00,   100.5,   0,       0,0,0,0,0",
			"2014-05-28-10-00-03,   101.0,   0,       0,0,0,0,0",
		},
		suite.readLines(csvPath),
	)
	suite.R.False(CheckExistence(filepath.Join(suite.OutputDir, "IDLE.csv")))
}

func (suite *RunTestSuite) TestAppendTwice() {
	args := Args{Input: suite.InputPath, Output: suite.OutputDir}
	_, err := suite.run(args)
	suite.R.NoError(err)
	_, err = suite.run(args)
	suite.R.NoError(err)

	lines := suite.readLines(filepath.Join(suite.OutputDir, "TESTX.csv"))
	suite.R.Len(lines, 5)
	suite.R.Equal(drecord.Header(), lines[0])
	suite.R.Equal(lines[1:3], lines[3:5])
}

func (suite *RunTestSuite) TestNoHeader() {
	_, err := suite.run(Args{Input: suite.InputPath, Output: suite.OutputDir, NoHeader: true})
	suite.R.NoError(err)

	lines := suite.readLines(filepath.Join(suite.OutputDir, "TESTX.csv"))
	suite.R.Len(lines, 2)
	suite.R.True(strings.HasPrefix(lines[0], "2014-05-28-10-00-00,   100.5,"))
}

func (suite *RunTestSuite) TestConfigFile() {
	configPath := filepath.Join(suite.Dir, "qrt2csv.yaml")
	configured := filepath.Join(suite.Dir, "configured")
	suite.R.NoError(os.WriteFile(configPath, []byte("output_dir: "+configured+"\nheader_row: false\n"), 0o644))

	_, err := suite.run(Args{Input: suite.InputPath, Config: configPath})
	suite.R.NoError(err)

	suite.R.Len(suite.readLines(filepath.Join(configured, "TESTX.csv")), 2)
}

func (suite *RunTestSuite) TestDescribe() {
	stdout, err := suite.run(Args{Input: suite.InputPath, Output: suite.OutputDir, Describe: true})
	suite.R.NoError(err)

	summary := map[string]any{}
	suite.R.NoError(json.Unmarshal([]byte(stdout), &summary))
	suite.R.Equal("unaligned", summary["alignment"])
	suite.R.False(CheckExistence(suite.OutputDir))
}

func (suite *RunTestSuite) TestMissingInput() {
	_, err := suite.run(Args{Input: filepath.Join(suite.Dir, "missing.qrt"), Output: suite.OutputDir})
	suite.R.Error(err)
}

func (suite *RunTestSuite) TestUnresolvedAlignment() {
	bs, err := os.ReadFile(suite.InputPath)
	suite.R.NoError(err)
	suite.R.NoError(os.WriteFile(suite.InputPath, bs[:len(bs)-1], 0o644))

	_, err = suite.run(Args{Input: suite.InputPath, Output: suite.OutputDir})

	var unresolved qrt.ErrUnresolvedAlignment
	suite.R.True(errors.As(err, &unresolved))
	suite.R.False(CheckExistence(filepath.Join(suite.OutputDir, "TESTX.csv")))
}

func (suite *RunTestSuite) TestInvalidLogLevel() {
	_, err := suite.run(Args{Input: suite.InputPath, LogLevel: "loud"})
	suite.R.Error(err)
}

func TestRun(t *testing.T) {
	suite.Run(t, new(RunTestSuite))
}
