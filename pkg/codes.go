package pkg

import (
	"errors"
	"strings"
)

// Code is a bit string, first bit first. false is '0', true is '1'.
type Code []bool

func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, bit := range c {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseCode is the inverse of Code.String. Characters other than '0' and
// '1' are rejected.
func ParseCode(s string) (Code, error) {
	c := make(Code, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			c[i] = true
		default:
			return nil, errors.New("code may only contain '0' and '1'")
		}
	}
	return c, nil
}

// CodeTable maps every leaf symbol of a tree to its root-to-leaf path.
type CodeTable map[byte]Code

// GenerateCodes walks the tree from root, left as '0' and right as '1'.
// A tree consisting of a single leaf gets the one-bit code "0".
func GenerateCodes(root *HuffmanNode) (CodeTable, error) {
	if root == nil {
		return nil, errors.New("nil huffman tree")
	}

	codes := make(CodeTable)
	if root.IsLeaf() {
		codes[root.Symbol] = Code{false}
		return codes, nil
	}
	generateCodes(root, codes, nil)
	return codes, nil
}

func generateCodes(node *HuffmanNode, codes CodeTable, prefix Code) {
	if node.IsLeaf() {
		codes[node.Symbol] = append(Code{}, prefix...)
		return
	}

	newPrefix := append(Code{}, prefix...)
	generateCodes(node.Left, codes, append(newPrefix, false))

	newPrefix = append(Code{}, prefix...)
	generateCodes(node.Right, codes, append(newPrefix, true))
}
