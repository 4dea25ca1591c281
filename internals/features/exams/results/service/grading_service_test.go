package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	examModel "kursusku_backend/internals/features/exams/exams/model"
)

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

func question(id uuid.UUID, correct string, points *float64) examModel.ExamQuestionModel {
	return examModel.ExamQuestionModel{
		ExamQuestionID:      id,
		ExamQuestionCorrect: ptrS(correct),
		ExamQuestionPoints:  points,
	}
}

func TestScoreAnswers_Deterministic(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	questions := []examModel.ExamQuestionModel{
		question(q1, "Jakarta", ptrF(10)),
		question(q2, "Bandung", ptrF(5)),
	}
	answers := map[string]string{
		q1.String(): "Jakarta",
		q2.String(): "Surabaya",
	}

	first := ScoreAnswers(questions, answers)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ScoreAnswers(questions, answers))
	}
	assert.Equal(t, 10.0, first.Score)
	assert.Equal(t, 15.0, first.TotalPoints)
}

func TestScoreAnswers_CaseAndWhitespaceInsensitive(t *testing.T) {
	qID := uuid.New()
	questions := []examModel.ExamQuestionModel{
		question(qID, "Jakarta", ptrF(4)),
	}

	for _, given := range []string{"jakarta", "  Jakarta  ", "JAKARTA", "\tjAkArTa\n"} {
		sum := ScoreAnswers(questions, map[string]string{qID.String(): given})
		assert.Equal(t, 4.0, sum.Score, "answer %q should match", given)
	}
}

func TestScoreAnswers_NoPartialCredit(t *testing.T) {
	qID := uuid.New()
	questions := []examModel.ExamQuestionModel{
		question(qID, "photosynthesis", ptrF(10)),
	}

	sum := ScoreAnswers(questions, map[string]string{qID.String(): "photosynthesi"})
	assert.Equal(t, 0.0, sum.Score)
	assert.Equal(t, 10.0, sum.TotalPoints)
}

func TestScoreAnswers_UnansweredCountAsWrongButTotalIncludesAll(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	q3 := uuid.New()
	questions := []examModel.ExamQuestionModel{
		question(q1, "a", ptrF(3)),
		question(q2, "b", ptrF(3)),
		question(q3, "c", ptrF(4)),
	}

	// hanya q1 dijawab (benar)
	sum := ScoreAnswers(questions, map[string]string{q1.String(): "a"})
	assert.Equal(t, 3.0, sum.Score)
	assert.Equal(t, 10.0, sum.TotalPoints)
	assert.InDelta(t, 30.0, sum.Percentage, 0.0001)
}

func TestScoreAnswers_UnknownAnswerKeysIgnored(t *testing.T) {
	qID := uuid.New()
	questions := []examModel.ExamQuestionModel{
		question(qID, "a", ptrF(2)),
	}
	answers := map[string]string{
		qID.String():        "a",
		uuid.New().String(): "stray",
	}

	sum := ScoreAnswers(questions, answers)
	assert.Equal(t, 2.0, sum.Score)
	assert.Equal(t, 2.0, sum.TotalPoints)
}

func TestScoreAnswers_DefaultPointsIsOne(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	questions := []examModel.ExamQuestionModel{
		question(q1, "x", nil),
		question(q2, "y", nil),
	}

	sum := ScoreAnswers(questions, map[string]string{q1.String(): "x"})
	assert.Equal(t, 1.0, sum.Score)
	assert.Equal(t, 2.0, sum.TotalPoints)
	assert.InDelta(t, 50.0, sum.Percentage, 0.0001)
}

func TestScoreAnswers_EmptyAnswerNeverScores(t *testing.T) {
	noKey := uuid.New()
	legacyEmpty := uuid.New()
	normal := uuid.New()
	questions := []examModel.ExamQuestionModel{
		// kunci jawaban kosong di kedua kolom
		{ExamQuestionID: noKey, ExamQuestionPoints: ptrF(5)},
		// kolom lama ada tapi isinya string kosong
		{ExamQuestionID: legacyEmpty, ExamQuestionAnswerLegacy: ptrS(""), ExamQuestionPoints: ptrF(5)},
		question(normal, "benar", ptrF(5)),
	}

	for _, given := range []string{"", "   ", "\t"} {
		sum := ScoreAnswers(questions, map[string]string{
			noKey.String():       given,
			legacyEmpty.String(): given,
			normal.String():      given,
		})
		assert.Equal(t, 0.0, sum.Score, "empty answer %q must not score", given)
		assert.Equal(t, 15.0, sum.TotalPoints)
	}
}

func TestScoreAnswers_EmptyQuestionListZeroPercentage(t *testing.T) {
	sum := ScoreAnswers(nil, map[string]string{"whatever": "a"})
	assert.Equal(t, 0.0, sum.Score)
	assert.Equal(t, 0.0, sum.TotalPoints)
	assert.Equal(t, 0.0, sum.Percentage)
}

func TestScoreAnswers_LegacyAnswerColumn(t *testing.T) {
	qID := uuid.New()
	questions := []examModel.ExamQuestionModel{
		{
			ExamQuestionID:           qID,
			ExamQuestionAnswerLegacy: ptrS("mitochondria"),
			ExamQuestionPoints:       ptrF(5),
		},
	}

	sum := ScoreAnswers(questions, map[string]string{qID.String(): " Mitochondria "})
	assert.Equal(t, 5.0, sum.Score)
}

func TestPassingBoundary(t *testing.T) {
	exam := examModel.ExamModel{}
	assert.Equal(t, 50.0, exam.PassingScore())

	// tepat di ambang → lulus
	assert.True(t, 50.0 >= exam.PassingScore())
	assert.False(t, 49.9999 >= exam.PassingScore())

	custom := examModel.ExamModel{ExamPassingScore: ptrF(75)}
	assert.Equal(t, 75.0, custom.PassingScore())
}

func TestScoreAnswers_TwoQuestionScenario(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	questions := []examModel.ExamQuestionModel{
		question(q1, "4", ptrF(1)),
		question(q2, "8", ptrF(1)),
	}
	answers := map[string]string{
		q1.String(): "4",
		q2.String(): "6",
	}

	sum := ScoreAnswers(questions, answers)
	assert.Equal(t, 1.0, sum.Score)
	assert.Equal(t, 2.0, sum.TotalPoints)
	assert.InDelta(t, 50.0, sum.Percentage, 0.0001)
}
