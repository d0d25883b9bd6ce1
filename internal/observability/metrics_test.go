package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: prometheus/promauto registers metrics globally, so we need to use
// unique namespaces per test to avoid registration conflicts.

func TestNewMetrics(t *testing.T) {
	m := NewMetrics("test_news_board_new")

	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.ExistenceChecks)
	assert.NotNil(t, m.ArticlesCreated)
	assert.NotNil(t, m.ArticlesDeleted)
	assert.NotNil(t, m.CommentsCreated)
	assert.NotNil(t, m.CommentsDeleted)
	assert.NotNil(t, m.TopicsCreated)
	assert.NotNil(t, m.VotesCast)
	assert.NotNil(t, m.EventsPublished)
	assert.NotNil(t, m.EventsFailed)
}

func TestRecordHTTPRequest(t *testing.T) {
	m := NewMetrics("test_http_request")

	m.RecordHTTPRequest("GET", "/api/articles", 200, 0.012)
	m.RecordHTTPRequest("GET", "/api/articles", 200, 0.02)
	m.RecordHTTPRequest("GET", "/api/articles", 400, 0.001)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/articles", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/articles", "400")))

	histCount, err := getHistogramSampleCount(m.HTTPRequestDuration.WithLabelValues("GET", "/api/articles").(prometheus.Histogram))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), histCount)
}

func TestRecordExistenceCheck(t *testing.T) {
	m := NewMetrics("test_existence_check")

	m.RecordExistenceCheck("articles", ExistenceFound)
	m.RecordExistenceCheck("articles", ExistenceMissing)
	m.RecordExistenceCheck("articles", ExistenceMissing)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ExistenceChecks.WithLabelValues("articles", "found")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ExistenceChecks.WithLabelValues("articles", "missing")))
}

func TestRecordBoardMutations(t *testing.T) {
	m := NewMetrics("test_board_mutations")

	m.RecordArticleCreated()
	m.RecordArticleDeleted()
	m.RecordCommentCreated()
	m.RecordCommentCreated()
	m.RecordCommentDeleted()
	m.RecordTopicCreated()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ArticlesCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ArticlesDeleted))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CommentsCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CommentsDeleted))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TopicsCreated))
}

func TestRecordVote(t *testing.T) {
	m := NewMetrics("test_votes")

	m.RecordVote("articles")
	m.RecordVote("comments")
	m.RecordVote("comments")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.VotesCast.WithLabelValues("articles")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.VotesCast.WithLabelValues("comments")))
}

func TestRecordEvents(t *testing.T) {
	m := NewMetrics("test_events")

	m.RecordEventPublished("article.created")
	m.RecordEventFailed("comment.deleted")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventsPublished.WithLabelValues("article.created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventsFailed.WithLabelValues("comment.deleted")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.EventsFailed.WithLabelValues("article.created")))
}

// Helper to get histogram sample count
func getHistogramSampleCount(h prometheus.Histogram) (uint64, error) {
	ch := make(chan prometheus.Metric, 1)
	h.Collect(ch)
	close(ch)

	var m prometheus.Metric
	for m = range ch {
		break
	}

	var dto = &dto.Metric{}
	if err := m.Write(dto); err != nil {
		return 0, err
	}

	return dto.Histogram.GetSampleCount(), nil
}
