package transcriber

import "time"

// span is one contiguous time slice of the source audio. Spans partition
// [0, total) with no gaps and no overlaps, in ascending index order.
type span struct {
	index int
	start time.Duration
	end   time.Duration
}

// planChunks splits [0, total) into ceil(total/chunkLen) spans of at most
// chunkLen each. The final span absorbs the remainder.
func planChunks(total, chunkLen time.Duration) []span {
	if total <= 0 || chunkLen <= 0 {
		return nil
	}

	n := int((total + chunkLen - 1) / chunkLen)
	spans := make([]span, 0, n)
	for start := time.Duration(0); start < total; start += chunkLen {
		end := start + chunkLen
		if end > total {
			end = total
		}
		spans = append(spans, span{index: len(spans), start: start, end: end})
	}
	return spans
}
