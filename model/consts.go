package model

// 量表题的四级选项（波斯语：优秀/良好/一般/较差）
const (
	ScaleExcellent = "عالی"
	ScaleGood      = "خوب"
	ScaleAverage   = "متوسط"
	ScalePoor      = "ضعیف"
)

// 单选题常用选项
const (
	AnswerYes       = "بله"  // 是
	AnswerNo        = "خیر"  // 否
	AnswerPatient   = "بیمار" // 患者
	AnswerCompanion = "همراه" // 陪护
	AnswerMale      = "مرد"  // 男
	AnswerFemale    = "زن"   // 女
)
