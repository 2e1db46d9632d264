package bot

import (
	"strconv"
	"strings"
)

// parseAmount parses free-text amounts, accepting both "10.50" and the
// pt-BR style "10,50".
func parseAmount(input string) (float64, error) {
	s := strings.TrimSpace(input)
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, nil
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		return strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	}
	return 0, err
}
