package grades

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BucketEdges are the fixed histogram bin edges. Every bucket is half-open
// except the last one, which includes 100.
var BucketEdges = [...]float64{0, 25, 50, 75, 100}

const BucketCount = len(BucketEdges) - 1

type Bucket struct {
	Low   float64
	High  float64
	Count int
}

func (b Bucket) Label() string {
	return fmt.Sprintf("%g-%g", b.Low, b.High)
}

type Histogram struct {
	Assignment string
	Title      string
	Buckets    [BucketCount]Bucket
}

func (h *Histogram) Counts() []int {
	counts := make([]int, BucketCount)
	for i, bucket := range h.Buckets {
		counts[i] = bucket.Count
	}
	return counts
}

func bucketIndex(score float64) (int, bool) {
	last := BucketEdges[BucketCount]
	if !(score >= BucketEdges[0] && score <= last) {
		return 0, false
	}
	if score == last {
		return BucketCount - 1, true
	}
	for i := 0; i < BucketCount; i++ {
		if score < BucketEdges[i+1] {
			return i, true
		}
	}
	return 0, false
}

// BucketScores counts scores per bucket. Values outside [0, 100] and NaN are
// not counted.
func BucketScores(scores []float64) [BucketCount]Bucket {
	var buckets [BucketCount]Bucket
	for i := range buckets {
		buckets[i].Low = BucketEdges[i]
		buckets[i].High = BucketEdges[i+1]
	}
	for _, score := range scores {
		if i, ok := bucketIndex(score); ok {
			buckets[i].Count++
		}
	}
	return buckets
}

func HistogramTitle(assignment string) string {
	return fmt.Sprintf("Histogram of %s Scores", cases.Title(language.English).String(assignment))
}

func (g *Gradebook) AssignmentHistogram(name string) (*Histogram, error) {
	scores, err := g.AssignmentScores(name)
	if err != nil {
		return nil, err
	}
	return &Histogram{
		Assignment: name,
		Title:      HistogramTitle(name),
		Buckets:    BucketScores(scores),
	}, nil
}
