package client

import (
	"fmt"
	mrand "math/rand"
	"sort"
	"time"

	"github.com/h33n313/nazarsanji-omidhospital/model"
)

const (
	mockCount    = 154
	mockSpanDays = 90
	// 固定随机种子，保证每个离线客户端生成同一份演示数据
	mockSeed = 154
)

var mockScaleIDs = []string{
	"q4_1", "q4_2",
	"q5_1", "q5_2", "q5_3",
	"q6_1", "q6_2", "q6_3", "q6_4",
	"q7_1", "q7_2", "q7_3",
	"q8_1", "q8_2", "q8_3", "q8_4",
	"q9_1", "q9_2", "q9_3", "q9_4",
}

var mockComments = []string{
	"برخورد پرسنل پذیرش بسیار عالی و محترمانه بود.",
	"متاسفانه غذای ناهار سرد بود، لطفا رسیدگی کنید.",
	"از دکتر معالج کمال تشکر را دارم.",
	"فضای اتاق‌ها بسیار تمیز و آرام‌بخش بود.",
	"کمی معطلی در هنگام ترخیص داشتیم.",
	"پرستاران بخش بسیار دلسوز و مهربان هستند.",
	"وضعیت تهویه اتاق مناسب نبود.",
	"لطفا تعداد صندلی‌های انتظار را افزایش دهید.",
	"همه چیز عالی بود، خسته نباشید.",
	"برخورد نگهبانی ورودی می‌توانست بهتر باشد.",
}

// GenerateMockData 生成首次离线使用的演示答卷
// 随机序列由固定种子驱动，只有时间戳随生成时刻浮动；
// 生成结果会被缓存持久化，后续读取不再重新生成
func GenerateMockData() []model.Submission {
	r := mrand.New(mrand.NewSource(mockSeed))
	now := time.Now()
	span := time.Duration(mockSpanDays) * 24 * time.Hour

	recs := make([]model.Submission, 0, mockCount)
	for i := 0; i < mockCount; i++ {
		answers := map[string]interface{}{}

		if r.Float64() > 0.4 {
			answers["q1"] = model.AnswerPatient
		} else {
			answers["q1"] = model.AnswerCompanion
		}
		if r.Float64() > 0.5 {
			answers["q2"] = model.AnswerMale
		} else {
			answers["q2"] = model.AnswerFemale
		}
		if r.Float64() > 0.1 {
			answers["q3"] = model.AnswerYes
		} else {
			answers["q3"] = model.AnswerNo
		}

		// 量表题偏正向：50% 优秀，30% 良好，15% 一般，5% 较差
		for _, id := range mockScaleIDs {
			v := r.Float64()
			switch {
			case v > 0.5:
				answers[id] = model.ScaleExcellent
			case v > 0.2:
				answers[id] = model.ScaleGood
			case v > 0.05:
				answers[id] = model.ScaleAverage
			default:
				answers[id] = model.ScalePoor
			}
		}

		if r.Float64() > 0.7 {
			answers["q10"] = mockComments[r.Intn(len(mockComments))]
		}

		ts := now.Add(-time.Duration(r.Int63n(int64(span))))
		recs = append(recs, model.Submission{
			ID:        fmt.Sprintf("mock-%d", i),
			Timestamp: ts.UTC().Format(time.RFC3339),
			Answers:   answers,
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Timestamp > recs[j].Timestamp
	})
	return recs
}
