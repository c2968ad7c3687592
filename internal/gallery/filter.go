package gallery

import "fusion-site/models"

// FilterByTag keeps the events tagged with tag. An empty tag means all
// events. The input is not modified.
func FilterByTag(events []models.Event, tag string) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if tag == "" || e.HasTag(tag) {
			out = append(out, e)
		}
	}
	return out
}

// AllTags lists each tag once, in order of first appearance.
func AllTags(events []models.Event) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, e := range events {
		for _, t := range e.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

var tagClasses = map[string]string{
	"School":        "tag-blue",
	"Workshop":      "tag-purple",
	"Conference":    "tag-green",
	"Training":      "tag-orange",
	"Research":      "tag-cyan",
	"Fusion":        "tag-pink",
	"Engineering":   "tag-yellow",
	"International": "tag-indigo",
	"Collaboration": "tag-teal",
}

// TagClass is the badge colour class for tag; unknown tags get none.
func TagClass(tag string) string {
	return tagClasses[tag]
}
