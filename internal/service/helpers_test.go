package service

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sameAs сравнивает аргументы мока по строковому представлению. Так decimal.Decimal с равным значением,
// но разной экспонентой считаются равными.
type sameAs struct {
	want any
}

func (m sameAs) Matches(x any) bool {
	return fmt.Sprintf("%+v", x) == fmt.Sprintf("%+v", m.want)
}

func (m sameAs) String() string {
	return fmt.Sprintf("is same as %+v", m.want)
}
