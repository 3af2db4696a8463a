package schema

import "github.com/h33n313/nazarsanji-omidhospital/model"

// 量表题统一使用四级选项
var scaleOptions = []string{
	model.ScaleExcellent,
	model.ScaleGood,
	model.ScaleAverage,
	model.ScalePoor,
}

// SurveyData 静态问卷定义
// 存储层不依赖该定义，客户端与服务端的版本漂移被容忍
var SurveyData = model.SurveyData{
	Header: model.SurveyHeader{
		Title:    "نظرسنجی بیمارستان امید",
		LogoText: "بیمارستان فوق تخصصی امید",
		Intro:    "بیمار و همراه گرامی، نظرات شما ما را در بهبود کیفیت خدمات یاری می‌کند. لطفا چند دقیقه از وقت خود را به پاسخگویی اختصاص دهید.",
	},
	Sections: []model.Section{
		{
			ID:    1,
			Title: "مشخصات عمومی",
			Questions: []model.Question{
				{ID: "q1", Type: model.QuestionRadio, Text: "پاسخ‌دهنده", Options: []string{model.AnswerPatient, model.AnswerCompanion}},
				{ID: "q2", Type: model.QuestionRadio, Text: "جنسیت", Options: []string{model.AnswerMale, model.AnswerFemale}},
				{ID: "q3", Type: model.QuestionRadio, Text: "آیا در صورت نیاز مجددا این بیمارستان را انتخاب می‌کنید؟", Options: []string{model.AnswerYes, model.AnswerNo}},
			},
		},
		{
			ID:    2,
			Title: "پذیرش و ترخیص",
			Questions: []model.Question{
				{ID: "q4_1", Type: model.QuestionScale, Text: "سرعت و سهولت فرآیند پذیرش", Options: scaleOptions},
				{ID: "q4_2", Type: model.QuestionScale, Text: "نحوه برخورد پرسنل پذیرش", Options: scaleOptions},
			},
		},
		{
			ID:    3,
			Title: "کادر پزشکی",
			Questions: []model.Question{
				{ID: "q5_1", Type: model.QuestionScale, Text: "حضور به موقع پزشک معالج", Options: scaleOptions},
				{ID: "q5_2", Type: model.QuestionScale, Text: "توضیحات پزشک درباره روند درمان", Options: scaleOptions},
				{ID: "q5_3", Type: model.QuestionScale, Text: "نحوه برخورد پزشک معالج", Options: scaleOptions},
			},
		},
		{
			ID:    4,
			Title: "کادر پرستاری",
			Questions: []model.Question{
				{ID: "q6_1", Type: model.QuestionScale, Text: "رسیدگی به موقع پرستاران", Options: scaleOptions},
				{ID: "q6_2", Type: model.QuestionScale, Text: "نحوه برخورد پرستاران", Options: scaleOptions},
				{ID: "q6_3", Type: model.QuestionScale, Text: "آموزش‌های ارائه شده هنگام بستری", Options: scaleOptions},
				{ID: "q6_4", Type: model.QuestionScale, Text: "پاسخگویی به سوالات شما", Options: scaleOptions},
			},
		},
		{
			ID:    5,
			Title: "خدمات رفاهی",
			Questions: []model.Question{
				{ID: "q7_1", Type: model.QuestionScale, Text: "کیفیت غذای ارائه شده", Options: scaleOptions},
				{ID: "q7_2", Type: model.QuestionScale, Text: "نظافت اتاق و سرویس بهداشتی", Options: scaleOptions},
				{ID: "q7_3", Type: model.QuestionScale, Text: "آرامش و سکوت بخش", Options: scaleOptions},
			},
		},
		{
			ID:    6,
			Title: "واحدهای پاراکلینیک",
			Questions: []model.Question{
				{ID: "q8_1", Type: model.QuestionScale, Text: "آزمایشگاه", Options: scaleOptions},
				{ID: "q8_2", Type: model.QuestionScale, Text: "تصویربرداری", Options: scaleOptions},
				{ID: "q8_3", Type: model.QuestionScale, Text: "داروخانه", Options: scaleOptions},
				{ID: "q8_4", Type: model.QuestionScale, Text: "واحد فیزیوتراپی", Options: scaleOptions},
			},
		},
		{
			ID:    7,
			Title: "سایر خدمات",
			Questions: []model.Question{
				{ID: "q9_1", Type: model.QuestionScale, Text: "نگهبانی و انتظامات", Options: scaleOptions},
				{ID: "q9_2", Type: model.QuestionScale, Text: "واحد صندوق و ترخیص", Options: scaleOptions},
				{ID: "q9_3", Type: model.QuestionScale, Text: "راهنمایی و اطلاع‌رسانی", Options: scaleOptions},
				{ID: "q9_4", Type: model.QuestionScale, Text: "امکانات رفاهی همراهان", Options: scaleOptions},
			},
		},
		{
			ID:    8,
			Title: "نظرات و پیشنهادات",
			Questions: []model.Question{
				{ID: "q10", Type: model.QuestionTextarea, Text: "در صورت تمایل نظر یا پیشنهاد خود را بنویسید", Placeholder: "نظر شما..."},
			},
		},
	},
}
