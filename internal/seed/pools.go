package seed

// Subject, action and outlet pools. Entries are kept in their native form;
// display strings go through the translation lookup in i18n.go, which falls
// back to the original entry when no mapping exists.

var politicsDomesticSubjects = []string{
	"国务院", "全国人大常委会", "中央政治局", "外交部",
	"最高人民法院", "最高人民检察院", "国家发改委", "财政部",
	"公安部", "教育部", "科技部", "生态环境部",
	"各省省政府", "香港特区政府", "澳门特区政府", "中国人民解放军",
}

var politicsInternationalSubjects = []string{
	"美国总统", "美国国会", "欧盟委员会", "联合国安理会",
	"俄罗斯政府", "英国政府", "法国总统", "德国总理",
	"日本首相", "韩国总统", "朝鲜领导人", "印度总理",
	"中东和谈", "北约峰会", "G20峰会", "联合国大会",
}

var subjectPools = map[Category][]string{
	Technology: {
		"人工智能研究团队", "量子计算实验室", "航天科技集团", "新能源汽车制造商",
		"5G技术联盟", "半导体产业", "大数据研究中心", "云计算服务提供商",
		"元宇宙研发团队", "区块链技术公司", "生物科技实验室", "无人机研发中心",
		"智能机器人研究小组", "可穿戴设备厂商", "AR/VR技术公司", "绿色科技企业",
	},
	Culture: {
		"国家博物馆", "故宫博物院", "中央芭蕾舞团", "国家话剧院",
		"中国作家协会", "国际电影节", "世界文化遗产委员会", "传统艺术节",
		"民族音乐团体", "现代艺术展览", "文学奖评选委员会", "考古发掘团队",
		"非物质文化遗产保护中心", "文化交流协会", "影视制作公司", "出版集团",
	},
	Weather: {
		"国家气象局", "中国气象局", "台风预警中心", "暴雨监测站",
		"高温预警部门", "寒潮预报中心", "沙尘暴监测网络", "雷电防护中心",
		"空气质量监测站", "气候变化研究中心", "防洪抗旱指挥部", "地质灾害预警系统",
		"极端天气应急响应小组", "气象卫星中心", "农业气象服务", "城市气象研究团队",
	},
	Economy: {
		"中国人民银行", "中国银保监会", "中国证监会", "财政部",
		"国家统计局", "世界银行", "国际货币基金组织", "亚洲开发银行",
		"大型国企", "跨国公司", "金融市场监管机构", "国际贸易组织",
		"房地产市场研究中心", "股市分析机构", "投资银行", "经济研究智库",
	},
}

var actionPools = map[Category][]string{
	Politics: {
		"发布重要政策", "召开高层会议", "签署合作协议", "发表重要讲话",
		"提出新法案", "举行外交会谈", "回应国际关切", "调整外交政策",
		"部署重要改革", "宣布人事任命", "启动特别调查", "通过重大决议",
		"举办国际峰会", "发布外交声明", "应对国际危机", "推动区域合作",
	},
	Technology: {
		"发布重大科技成果", "研发新技术", "推出创新产品", "突破技术瓶颈",
		"成立联合实验室", "获得重大专利", "发布行业标准", "完成技术升级",
		"举办科技展览", "开展国际合作", "投资研发项目", "应用新技术",
		"宣布技术路线图", "解决关键技术难题", "发布研究报告", "获得科技奖项",
	},
	Culture: {
		"举办文化节", "开展国际交流", "发布艺术作品", "举行文化遗产保护活动",
		"举办艺术节", "出版文学作品", "举办体育赛事", "进行文化产业投资",
		"开展学术研讨", "举办国际电影展", "举办音乐会", "推出文化品牌",
		"启动文化工程", "组织文化论坛", "举办艺术展览", "设立文化奖项",
	},
	Weather: {
		"发布天气预报", "发出灾害预警", "启动应急响应", "监测极端天气",
		"发布高温预警", "发布暴雨预警", "发布台风预警", "发布寒潮预警",
		"评估灾害影响", "提供气象服务", "研究气候变化", "发布空气质量报告",
		"开展气象科普", "预测天气趋势", "更新气象数据", "分析气象灾害",
	},
	Economy: {
		"发布经济数据", "调整货币政策", "推出经济计划", "公布财政预算",
		"发布行业报告", "调整利率政策", "吸引投资", "促进贸易合作",
		"应对市场波动", "发布消费指数", "优化营商环境", "推动经济转型",
		"评估经济形势", "推出刺激政策", "发布就业数据", "应对通胀压力",
	},
}

var domesticOutlets = []string{
	"人民日报", "新华社", "中央电视台", "光明日报",
	"经济日报", "中国日报", "科技日报", "中国青年报",
	"环球时报", "法制日报", "澎湃新闻", "界面新闻",
	"财新网", "凤凰网", "南方周末", "第一财经",
}

var internationalOutlets = []string{
	"路透社", "美联社", "法新社", "彭博社",
	"华尔街日报", "金融时报", "纽约时报", "华盛顿邮报",
	"卫报", "经济学人", "BBC新闻", "CNN",
	"NHK", "半岛电视台", "今日俄罗斯", "亚洲新闻台",
}
