package handlers

import (
	"strconv"
	"time"
)

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}

func isValidDate(raw string) bool {
	_, err := time.Parse("2006-01-02", raw)
	return err == nil
}
