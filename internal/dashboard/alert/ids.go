package alert

import "fmt"

func SourceFailedID(datasource string) string {
	return fmt.Sprintf("source-%s-failed", datasource)
}

func SourceOutdatedID(datasource string) string {
	return fmt.Sprintf("source-%s-outdated", datasource)
}
