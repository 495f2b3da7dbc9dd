package console

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine bir satır okur; girdi kaynağı kapandığında ok=false döner ve
// döngüler bunu çıkış olarak yorumlar.
func (c *Console) readLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

func (c *Console) readString(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	return c.readLine()
}

func (c *Console) readInt(prompt string) (int, bool) {
	for {
		line, ok := c.readString(prompt)
		if !ok {
			return 0, false
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a valid integer.")
			continue
		}
		return value, true
	}
}

func (c *Console) readFloat(prompt string) (float64, bool) {
	for {
		line, ok := c.readString(prompt)
		if !ok {
			return 0, false
		}

		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a valid number.")
			continue
		}
		return value, true
	}
}

func (c *Console) yesNo(prompt string) (bool, bool) {
	line, ok := c.readString(prompt + " ")
	if !ok {
		return false, false
	}
	return strings.HasPrefix(strings.ToLower(line), "y"), true
}
