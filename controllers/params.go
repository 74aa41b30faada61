package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func intParam(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}

// limitQuery returns 0 when the limit parameter is absent or unusable,
// which callers treat as "no limit".
func limitQuery(c *gin.Context) int {
	v := c.Query("limit")
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// dateQuery parses an optional ?date= parameter as a calendar date or
// an RFC 3339 instant. A nil result means no date filter.
func dateQuery(c *gin.Context) (*time.Time, error) {
	v := c.Query("date")
	if v == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	return nil, errors.New("invalid date")
}
