package i18n

var chinese = map[Key]string{
	// Header
	KeyAppTitle:    "安大略省长者护理指南",
	KeyAppSubtitle: "为家庭提供简单易懂的决策辅助工具。",
	KeyAssessment:  "评估",
	KeyResults:     "结果",
	KeyLanguage:    "语言",

	// Assessment form
	KeyQuickAssessment:   "快速护理评估（2分钟）",
	KeyProvince:          "省份",
	KeyAgeRange:          "年龄范围",
	KeyDailyActivities:   "日常活动（洗澡、穿衣、进食）",
	KeyCognitiveConcerns: "记忆/认知问题",
	KeyFormalAssessment:  "是否已进行正式需求评估？",
	KeyBudget:            "预算（可选）",
	KeyNotMedicalAdvice:  "这不是医疗建议。这是一个规划辅助工具。",
	KeySeeResults:        "查看结果 →",
	KeyPreview:           "预览（实时）",
	KeyBasedOnAnswers:    "基于您当前的答案",

	// Form options
	KeyOntario:            "安大略省",
	KeyOther:              "其他",
	KeyUnder70:            "70岁以下",
	KeyAge70to79:          "70-79岁",
	KeyAge80plus:          "80岁以上",
	KeyIndependent:        "独立",
	KeyNeedsSomeHelp:      "需要一些帮助",
	KeyNeedsDailyHelp:     "需要日常帮助/监督",
	KeyNone:               "无",
	KeyMildConcerns:       "轻微担忧",
	KeyDiagnosedCondition: "已确诊疾病",
	KeyYes:                "是",
	KeyNo:                 "否",
	KeyNotSure:            "不确定",
	KeyPreferNotToSay:     "不想说",
	KeyLowerBudget:        "较低预算",
	KeyMidBudget:          "中等预算",
	KeyHigherBudget:       "较高预算",

	// Results
	KeyRecommendedCarePath: "您推荐的护理路径",
	KeyWhyRecommendation:   "推荐理由",
	KeyThingsToKeepInMind:  "注意事项",
	KeyEditAnswers:         "← 编辑答案",
	KeyNext14DaysChecklist: "未来14天清单",

	// Care paths
	KeyHomeCare:       "居家护理",
	KeyRetirementHome: "退休之家",
	KeyLongTermCare:   "长期护理（LTC）",

	// Waitlist
	KeyWaitlistNotes:       "候补名单记录（可选）",
	KeyOptional:            "可选",
	KeyItemsDueForFollowup: "项可能需要在今天跟进。",
	KeyFacilityName:        "机构名称",
	KeyRequired:            "必填",
	KeyDateApplied:         "申请日期",
	KeyContactName:         "联系人姓名",
	KeyPhoneOrEmail:        "电话或电子邮件",
	KeyNotes:               "备注",
	KeyFollowUpEvery:       "每",
	KeyDays:                "天跟进一次",
	KeyAdd:                 "添加",
	KeyNoItemsYet:          "暂无项目。请在上方添加以跟踪跟进情况。",
	KeyAddOneToTrack:       "请在上方添加以跟踪跟进情况。",
	KeyFollowUpDue:         "需要跟进",
	KeyTracking:            "跟踪中",
	KeyApplied:             "申请日期",
	KeyLastFollowUp:        "最后跟进",
	KeyInterval:            "间隔",
	KeyContact:             "联系人",
	KeyMarkFollowedUp:      "标记已跟进",
	KeyRemove:              "删除",

	// Footer
	KeyDataStoredLocally: "数据存储在您的浏览器本地（无服务器）。",

	// Recommendation reasons
	KeyProvinceNote:                  "此MVP专注于安大略省。如果您在安大略省以外，护理类别仍然适用，但系统步骤会有所不同。",
	KeyDailyLivingSupportSignificant: "日常生活支持需求似乎很重要（行动能力、个人护理或监督）。",
	KeyCognitiveConcernsIncrease:     "认知问题增加了护理的复杂性。",
	KeyFormalAssessmentHelp:          "正式的需求评估/转介将有助于启动LTC相关流程。",
	KeyWaitTimesCanBeLong:            "等待时间可能很长；请尽早开始并考虑临时支持。",
	KeySomeHelpNeeded:                "需要一些帮助，但不一定需要24/7临床护理。",
	KeyRetirementHomeCovers:          "退休之家可以提供膳食、家政和支持服务。",
	KeyAskAboutMemoryCare:            "请具体询问记忆护理选项。",
	KeyNeedsModerate:                 "需求似乎适中，可以通过服务在家中提供支持。",
	KeyStartingWithHomeCare:          "从居家护理开始可以减少紧迫性，同时探索其他选择。",
	KeyMostlyIndependent:             "根据您的输入，您的父母目前似乎基本独立。",
	KeyHomeCareLeastDisruptive:       "居家护理+社区支持通常是最不具破坏性的第一步。",
	KeyBudgetNote:                    "预算提示：优先考虑公共支持选项，并询问补贴、资格和社区计划。",

	// Next steps
	KeyCreateOnePageSummary:     "创建一页摘要：诊断、药物、行动能力、最近的医院就诊和您的主要担忧。",
	KeyCollectKeyDocuments:      "收集关键文件：健康卡、身份证、药物清单和简要病史。",
	KeyWriteDown3Goals:          "写下3个现实的目标（例如：安全洗澡、膳食、监督、药物依从性）。",
	KeyContactOntarioHealth:     "联系安大略省健康居家（原家庭和社区护理）询问居家护理评估/服务。",
	KeyBookFamilyDoctor:         "预约家庭医生讨论支持需求和转介（职业治疗/物理治疗、居家护理）。",
	KeyExploreInterimOptions:    "探索临时选项：个人支持工作者（PSW）、送餐服务、成人日间项目。",
	KeyShortlistRetirementHomes: "列出5-10个附近的退休之家；安排参观（面对面或虚拟）。",
	KeyAskAboutCosts:            "询问：月度成本明细、护理套餐、人员配置、药物帮助、紧急响应和记忆护理。",
	KeyPlanTransition:           "规划过渡：试用住宿（如有）、入住清单和当前家庭的安全审查。",
	KeyAskAboutLTCProcess:       "向医院社工或家庭医生询问在安大略省启动LTC申请/评估流程。",
	KeyPrepareForWaitTimes:      "为等待时间做准备：安排临时支持（居家护理、退休之家、短期暂托）。",
	KeyMakeShortlistLTC:         "列出LTC之家清单，仔细跟踪沟通（日期、联系人、跟进）。",
}
