package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache command group.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local cache",
		Long: `Manage the local cache.

Labelplot caches parsed datasets, computed layouts and rendered artifacts
under the XDG cache directory. Entries expire on their own; clear wipes
them early.`,
	}

	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheClearCommand())

	return cmd
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	}
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			removed, bytes, err := clearCache(dir)
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			if removed == 0 {
				printInfo("Cache is already empty")
				return nil
			}
			printSuccess("Removed %d entries (%s)", removed, formatBytes(bytes))
			return nil
		},
	}
}

// clearCache deletes every regular file under dir and reports the count and
// total size removed. A missing directory counts as empty.
func clearCache(dir string) (int, int64, error) {
	var removed int
	var bytes int64

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		size := info.Size()
		if err := os.Remove(path); err != nil {
			return err
		}
		removed++
		bytes += size
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return removed, bytes, err
	}
	return removed, bytes, nil
}

// formatBytes renders a byte count in a human-friendly unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMG"[exp])
}
