// Package align computes a line-level alignment between two revisions of
// a file. The result is a single merged sequence in which every line is
// classified as unchanged, added, or deleted, suitable for rendering a
// unified diff view.
package align

import "strings"

// Kind classifies a line in the merged view.
type Kind int

const (
	Same Kind = iota
	Add
	Delete
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Delete:
		return "delete"
	default:
		return "same"
	}
}

// LineRecord is one line of the merged view.
type LineRecord struct {
	Kind Kind
	Text string
}

// Merge aligns old and new using a longest-common-subsequence over whole
// lines and returns the merged, classified sequence. Lines classified
// Same or Delete read back old in order; Same or Add read back new.
//
// The DP table is O(m·n) in time and space, which is fine for files up
// to a few thousand lines. Very large files (tens of thousands of lines)
// are a known scaling limit; no windowing is attempted.
func Merge(old, new []string) []LineRecord {
	m, n := len(old), len(new)

	// dp[i][j] = LCS length of old[i:] and new[j:]. The extra row and
	// column stay zero as the base case.
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if old[i] == new[j] {
				dp[i][j] = 1 + dp[i+1][j+1]
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	merged := make([]LineRecord, 0, m+n-dp[0][0])
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case old[i] == new[j]:
			merged = append(merged, LineRecord{Same, old[i]})
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			// At equal score a line leaves old before its replacement
			// enters new, matching conventional diff output.
			merged = append(merged, LineRecord{Delete, old[i]})
			i++
		default:
			merged = append(merged, LineRecord{Add, new[j]})
			j++
		}
	}
	for ; i < m; i++ {
		merged = append(merged, LineRecord{Delete, old[i]})
	}
	for ; j < n; j++ {
		merged = append(merged, LineRecord{Add, new[j]})
	}
	return merged
}

// SplitText splits file content into lines for Merge. A trailing
// newline does not produce a phantom empty last line, so a file and
// the same file plus a final newline still align line for line.
func SplitText(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// MergedText joins every merged line back into one blob, the exact
// input the highlighter should see.
func MergedText(merged []LineRecord) string {
	texts := make([]string, len(merged))
	for i, rec := range merged {
		texts[i] = rec.Text
	}
	return strings.Join(texts, "\n")
}

// Texts returns the line texts of the records whose kind is in keep.
func Texts(merged []LineRecord, keep ...Kind) []string {
	var out []string
	for _, rec := range merged {
		for _, k := range keep {
			if rec.Kind == k {
				out = append(out, rec.Text)
				break
			}
		}
	}
	return out
}
