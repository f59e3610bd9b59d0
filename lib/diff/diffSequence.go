// Package diff compares two revisions of a page line by line.
//
// The comparison is based on the Myers O(ND) shortest edit script algorithm. Lines are
// opaque tokens: two lines are equal only if their strings are equal.
package diff

import "strings"

type direction uint8

const (
	// directionX consumes one line of the previous text.
	directionX direction = iota
	// directionY consumes one line of the current text.
	directionY
	// directionXY consumes one line common to both texts.
	directionXY
)

// path is an immutable, backwards linked list of directions. Extending a path never
// modifies the path it was extended from, so diagonals can share their prefixes.
type path struct {
	direction direction
	prev      *path
	length    int
}

func (p *path) extend(d direction) *path {
	length := 1
	if p != nil {
		length = p.length + 1
	}
	return &path{direction: d, prev: p, length: length}
}

func (p *path) directions() []direction {
	if p == nil {
		return nil
	}
	directions := make([]direction, p.length)
	for current, i := p, p.length-1; current != nil; current, i = current.prev, i-1 {
		directions[i] = current.direction
	}
	return directions
}

type nodeInfo struct {
	y    int
	path *path
}

func getNodeInfo(visited map[int]nodeInfo, k int) nodeInfo {
	if node, ok := visited[k]; ok {
		return node
	}
	return nodeInfo{}
}

// makeNodeInfo steps onto diagonal k from the better of its neighbours at distance d-1.
func makeNodeInfo(m, n, d, k int, visited map[int]nodeInfo) nodeInfo {
	if d == 0 {
		return nodeInfo{}
	}

	nextNode := getNodeInfo(visited, k+1)
	prevNode := getNodeInfo(visited, k-1)
	var usePrev bool
	switch {
	case k <= -d || k <= -n:
		usePrev = false
	case d <= k || m <= k:
		usePrev = true
	default:
		usePrev = nextNode.y < prevNode.y
	}

	if usePrev {
		return nodeInfo{y: prevNode.y, path: prevNode.path.extend(directionX)}
	}
	return nodeInfo{y: nextNode.y + 1, path: nextNode.path.extend(directionY)}
}

// snake follows diagonal k while both texts share the same line.
func snake(xValues, yValues []string, k int, current nodeInfo) (int, nodeInfo) {
	x := k + current.y
	y := current.y
	moved := current.path
	for x < len(xValues) && y < len(yValues) && xValues[x] == yValues[y] {
		moved = moved.extend(directionXY)
		x++
		y++
	}
	return x, nodeInfo{y: y, path: moved}
}

func findEditGraph(xValues, yValues []string) []direction {
	visited := make(map[int]nodeInfo)
	m := len(xValues)
	n := len(yValues)
	for d := 0; d <= m+n; d++ {
		for k := -d; k <= d; k += 2 {
			if k < -n || m < k {
				continue
			}
			x, moved := snake(xValues, yValues, k, makeNodeInfo(m, n, d, k, visited))
			if m <= x && n <= moved.y {
				return moved.path.directions()
			}
			visited[k] = moved
		}
	}
	return nil
}

// SubsequenceType tells how a run of lines changed between two revisions.
type SubsequenceType string

const (
	Keep    SubsequenceType = "Keep"
	Deleted SubsequenceType = "Deleted"
	Added   SubsequenceType = "Added"
)

// Subsequence is a run of consecutive lines sharing the same SubsequenceType.
type Subsequence struct {
	Type     SubsequenceType `json:"type"`
	Sequence []string        `json:"sequence"`
}

func appendLineToSubsequences(subsequenceType SubsequenceType, line string, subsequences []Subsequence) []Subsequence {
	if last := len(subsequences) - 1; last >= 0 && subsequences[last].Type == subsequenceType {
		subsequences[last].Sequence = append(subsequences[last].Sequence, line)
		return subsequences
	}
	return append(subsequences, Subsequence{Type: subsequenceType, Sequence: []string{line}})
}

// GenerateDiffSequence returns the runs of kept, added and deleted lines that turn
// previousText into currentText with the fewest insertions and deletions.
//
// When a line is replaced, the Added run precedes the Deleted run.
func GenerateDiffSequence(previousText, currentText []string) []Subsequence {
	subsequences := make([]Subsequence, 0)

	x, y := 0, 0
	for _, d := range findEditGraph(previousText, currentText) {
		switch d {
		case directionXY:
			subsequences = appendLineToSubsequences(Keep, previousText[x], subsequences)
			x++
			y++
		case directionX:
			subsequences = appendLineToSubsequences(Deleted, previousText[x], subsequences)
			x++
		case directionY:
			subsequences = appendLineToSubsequences(Added, currentText[y], subsequences)
			y++
		}
	}
	return subsequences
}

// SplitLines splits revision content into the lines compared by GenerateDiffSequence.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// DiffStats counts the lines of each SubsequenceType.
type DiffStats struct {
	Kept    int `json:"kept"`
	Added   int `json:"added"`
	Deleted int `json:"deleted"`
}

func Stats(subsequences []Subsequence) DiffStats {
	var stats DiffStats
	for _, subsequence := range subsequences {
		switch subsequence.Type {
		case Keep:
			stats.Kept += len(subsequence.Sequence)
		case Added:
			stats.Added += len(subsequence.Sequence)
		case Deleted:
			stats.Deleted += len(subsequence.Sequence)
		}
	}
	return stats
}
