package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gtrie/bitgraph"
)

// ErrZeroIndexed is returned by ReadHostEdgeList when a line names vertex
// id 0: host files must be 1-indexed.
var ErrZeroIndexed = errors.New("graphio: host edge list must be 1-indexed (vertex id 0 seen)")

// ReadPatternsG6 decodes one pattern per non-blank line of r. A line
// beginning with '&' is digraph6 (directed); any other non-blank line is
// treated as classic graph6 (undirected, stored as a symmetric directed
// adjacency).
func ReadPatternsG6(r io.Reader) ([]*bitgraph.BitGraph, error) {
	var patterns []*bitgraph.BitGraph

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		g, err := decodeGraph6Line(line)
		if err != nil {
			return nil, fmt.Errorf("graphio: ReadPatternsG6: line %d: %w", lineNo, err)
		}
		patterns = append(patterns, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: ReadPatternsG6: %w", err)
	}

	return patterns, nil
}

func decodeGraph6Line(line string) (*bitgraph.BitGraph, error) {
	directed := false
	body := line
	if strings.HasPrefix(body, "&") {
		directed = true
		body = body[1:]
	}
	if body == "" {
		return nil, errors.New("empty graph6 body")
	}

	n, rest, err := decodeN(body)
	if err != nil {
		return nil, err
	}

	bitsNeeded := n * n
	if !directed {
		// graph6 stores only the upper triangle, column by column:
		// (0,1), (0,2), (1,2), (0,3), (1,3), (2,3), ...
		bitsNeeded = n * (n - 1) / 2
	}
	bits, err := decodeBitVector(rest, bitsNeeded)
	if err != nil {
		return nil, err
	}

	var edges [][2]int
	if !directed {
		k := 0
		for v := 1; v < n; v++ {
			for u := 0; u < v; u++ {
				if bits[k] {
					edges = append(edges, [2]int{u, v}, [2]int{v, u})
				}
				k++
			}
		}

		return bitgraph.FromEdges(n, true, edges, false)
	}

	hasLoop := false
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if !bits[u*n+v] {
				continue
			}
			if u == v {
				hasLoop = true
			}
			edges = append(edges, [2]int{u, v})
		}
	}

	return bitgraph.FromEdges(n, true, edges, hasLoop)
}

// decodeN parses the graph6 N(n) prefix (single-byte form only, n <= 62 —
// ample for the k <= 8 patterns this system targets) and returns n plus the
// remaining encoded bytes.
func decodeN(body string) (int, string, error) {
	if len(body) == 0 {
		return 0, "", errors.New("missing N(n)")
	}
	n := int(body[0]) - 63
	if n < 0 || n > 62 {
		return 0, "", fmt.Errorf("N(n) byte %d out of single-byte range", body[0])
	}

	return n, body[1:], nil
}

// decodeBitVector unpacks rest's 6-bit groups (each byte value-63) into a
// bit vector of length want, MSB-first within each group.
func decodeBitVector(rest string, want int) ([]bool, error) {
	needBytes := (want + 5) / 6
	if len(rest) < needBytes {
		return nil, fmt.Errorf("graph6 body too short: need %d bytes, got %d", needBytes, len(rest))
	}

	bits := make([]bool, 0, want)
	for i := 0; i < needBytes; i++ {
		val := int(rest[i]) - 63
		if val < 0 || val > 63 {
			return nil, fmt.Errorf("byte %q out of graph6 range", rest[i])
		}
		for shift := 5; shift >= 0; shift-- {
			if len(bits) == want {
				break
			}
			bits = append(bits, (val>>uint(shift))&1 == 1)
		}
	}

	return bits, nil
}

// EncodeDigraph6 renders g as a digraph6 string ('&' prefix, single-byte
// N(n), row-major adjacency bits packed 6 per byte). Used to derive stable
// canonical labels for trie terminals; g.N() must be <= 62.
func EncodeDigraph6(g *bitgraph.BitGraph) string {
	n := g.N()
	bits := make([]bool, 0, n*n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			bits = append(bits, g.IsEdge(u, v))
		}
	}

	var sb strings.Builder
	sb.WriteByte('&')
	sb.WriteByte(byte(n + 63))
	sb.WriteString(encodeSixBitGroups(bits))

	return sb.String()
}

// encodeSixBitGroups packs bits into graph6 bytes, 6 bits per byte
// (value+63), MSB-first within each group, zero-padding the final group.
func encodeSixBitGroups(bits []bool) string {
	var sb strings.Builder
	for i := 0; i < len(bits); i += 6 {
		val := 0
		for j := 0; j < 6; j++ {
			val <<= 1
			if i+j < len(bits) && bits[i+j] {
				val |= 1
			}
		}
		sb.WriteByte(byte(val + 63))
	}

	return sb.String()
}

// ReadHostEdgeList parses a whitespace-separated, 1-indexed directed edge
// list ("u v" per line = edge u->v). includeLoops controls whether a
// self-loop line is kept (u==v) or silently dropped.
func ReadHostEdgeList(r io.Reader, includeLoops bool) (*bitgraph.BitGraph, error) {
	type pair struct{ u, v int }

	var pairs []pair
	maxID := -1

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("graphio: ReadHostEdgeList: line %d: expected \"u v\", got %q", lineNo, line)
		}

		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("graphio: ReadHostEdgeList: line %d: %w", lineNo, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("graphio: ReadHostEdgeList: line %d: %w", lineNo, err)
		}
		if u == 0 || v == 0 {
			return nil, fmt.Errorf("graphio: ReadHostEdgeList: line %d: %w", lineNo, ErrZeroIndexed)
		}

		pairs = append(pairs, pair{u, v})
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: ReadHostEdgeList: %w", err)
	}

	n := maxID
	edges := make([][2]int, 0, len(pairs))
	for _, p := range pairs {
		uu, vv := p.u-1, p.v-1
		if uu == vv && !includeLoops {
			continue
		}
		edges = append(edges, [2]int{uu, vv})
	}

	g, err := bitgraph.FromEdges(n, true, edges, includeLoops)
	if err != nil {
		return nil, fmt.Errorf("graphio: ReadHostEdgeList: %w", err)
	}

	return g, nil
}
