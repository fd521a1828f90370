package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TestRelease() {
	s.T().Setenv("GIN_MODE", "release")
	s.T().Setenv("LOG_LEVEL", "")

	var buf bytes.Buffer
	l := New(&buf)
	s.Equal(logrus.InfoLevel, l.GetLevel())

	l.WithField("username", "alice").Info("funded")
	var entry map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &entry))
	s.Equal("funded", entry["msg"])
	s.Equal("alice", entry["username"])
}

func (s *LoggerTestSuite) TestDevelopment() {
	s.T().Setenv("GIN_MODE", "debug")
	s.T().Setenv("LOG_LEVEL", "")

	l := New(&bytes.Buffer{})
	s.Equal(logrus.DebugLevel, l.GetLevel())
	s.IsType(&logrus.TextFormatter{}, l.Formatter)
}

func (s *LoggerTestSuite) TestLevelOverride() {
	cases := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{name: "warn", level: "warn", want: logrus.WarnLevel},
		{name: "error", level: "error", want: logrus.ErrorLevel},
		{name: "unknown value is ignored", level: "loud", want: logrus.InfoLevel},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.T().Setenv("GIN_MODE", "release")
			s.T().Setenv("LOG_LEVEL", t.level)
			s.Equal(t.want, New(&bytes.Buffer{}).GetLevel())
		})
	}
}
