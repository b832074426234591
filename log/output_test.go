package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutput(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		line       string
		expected   Output
		errMessage string
	}{
		{line: "stderr", expected: Output{Sink: SinkStderr}},
		{line: "stdout", expected: Output{Sink: SinkStdout}},
		{line: "none", expected: Output{Sink: SinkNone}},
		{
			line:     "file=/logs/locatorgen.log",
			expected: Output{Sink: SinkFile, Path: "/logs/locatorgen.log", Levels: logrus.AllLevels},
		},
		{
			line:     "file=/logs/locatorgen.log,level=info",
			expected: Output{Sink: SinkFile, Path: "/logs/locatorgen.log", Levels: logrus.AllLevels[:5]},
		},
		{
			line:     "file=locatorgen.log,level=warning",
			expected: Output{Sink: SinkFile, Path: "locatorgen.log", Levels: logrus.AllLevels[:4]},
		},
		{line: "file", errMessage: "log file path must not be empty"},
		{line: "file=,level=info", errMessage: "log file path must not be empty"},
		{line: "file=/logs/locatorgen.log,level=tea", errMessage: "unknown log level tea"},
		{line: "file=/logs/locatorgen.log,level=", errMessage: "unknown log level "},
		{line: "file=/logs/locatorgen.log,level=,", errMessage: "unknown log level "},
		{line: "file=/logs/locatorgen.log,unknown", errMessage: `unknown log file option "unknown"`},
		{line: "file=/logs/locatorgen.log,color=red", errMessage: `unknown log file option "color=red"`},
		{line: "loki", errMessage: "unsupported log output 'loki'"},
		{line: "", errMessage: "unsupported log output ''"},
		{line: "files=/logs/locatorgen.log", errMessage: "unsupported log output 'files=/logs/locatorgen.log'"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.line, func(t *testing.T) {
			t.Parallel()

			out, err := ParseOutput(test.line)
			if test.errMessage != "" {
				require.EqualError(t, err, test.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, out)
		})
	}
}

func TestLevelsUpTo(t *testing.T) {
	t.Parallel()

	levels, err := levelsUpTo("error")
	require.NoError(t, err)
	assert.Equal(t, []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}, levels)

	levels, err = levelsUpTo("trace")
	require.NoError(t, err)
	assert.Equal(t, logrus.AllLevels, levels)

	_, err = levelsUpTo("loud")
	require.EqualError(t, err, "unknown log level loud")
}
