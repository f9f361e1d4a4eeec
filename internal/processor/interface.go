package processor

import "context"

// Processor handles one media file dropped into the watch folder.
type Processor interface {
	Process(ctx context.Context, mediaPath string) error
}
