package utils

import "strings"

// SplitText splits a long string into chunks of approximately 'chunkSize' characters.
// It includes an 'overlap' to preserve context at boundaries and prefers
// breaking at whitespace so words survive intact.
func SplitText(text string, chunkSize int, overlap int) []string {
	if chunkSize <= 0 {
		return []string{text}
	}
	runes := []rune(text)
	totalLen := len(runes)
	if totalLen <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var chunks []string
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		} else {
			// Walk back to the nearest space to avoid cutting words. The
			// walk never exceeds the overlap so consecutive chunks still
			// cover the text without gaps.
			limit := end - overlap
			if limit < i {
				limit = i
			}
			for j := end; j > limit; j-- {
				if runes[j-1] == ' ' || runes[j-1] == '\n' {
					end = j
					break
				}
			}
		}

		chunk := strings.TrimSpace(string(runes[i:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == totalLen {
			break
		}
	}

	return chunks
}
