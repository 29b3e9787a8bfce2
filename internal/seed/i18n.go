package seed

// English display strings for pool entries. Lookups fall back to the
// original string when no mapping exists, so an unmapped entry degrades to
// its native form instead of an empty title.

var subjectTranslations = map[string]string{
	"国务院":       "The State Council",
	"全国人大常委会":   "The NPC Standing Committee",
	"中央政治局":     "The Central Politburo",
	"外交部":       "The Ministry of Foreign Affairs",
	"最高人民法院":    "The Supreme People's Court",
	"最高人民检察院":   "The Supreme People's Procuratorate",
	"国家发改委":     "The National Development and Reform Commission",
	"财政部":       "The Ministry of Finance",
	"公安部":       "The Ministry of Public Security",
	"教育部":       "The Ministry of Education",
	"科技部":       "The Ministry of Science and Technology",
	"生态环境部":     "The Ministry of Ecology and Environment",
	"各省省政府":     "Provincial Governments",
	"香港特区政府":    "The Hong Kong SAR Government",
	"澳门特区政府":    "The Macao SAR Government",
	"中国人民解放军":   "The People's Liberation Army",
	"美国总统":      "The US President",
	"美国国会":      "The US Congress",
	"欧盟委员会":     "The European Commission",
	"联合国安理会":    "The UN Security Council",
	"俄罗斯政府":     "The Russian Government",
	"英国政府":      "The British Government",
	"法国总统":      "The French President",
	"德国总理":      "The German Chancellor",
	"日本首相":      "The Japanese Prime Minister",
	"韩国总统":      "The South Korean President",
	"朝鲜领导人":     "The North Korean Leader",
	"印度总理":      "The Indian Prime Minister",
	"中东和谈":      "Middle East Peace Talks Delegation",
	"北约峰会":      "The NATO Summit",
	"G20峰会":     "The G20 Summit",
	"联合国大会":     "The UN General Assembly",
	"人工智能研究团队":  "An AI Research Team",
	"量子计算实验室":   "A Quantum Computing Lab",
	"航天科技集团":    "An Aerospace Technology Group",
	"新能源汽车制造商":  "An EV Manufacturer",
	"5G技术联盟":    "The 5G Technology Alliance",
	"半导体产业":     "The Semiconductor Industry",
	"大数据研究中心":   "A Big Data Research Center",
	"云计算服务提供商":  "A Cloud Computing Provider",
	"元宇宙研发团队":   "A Metaverse R&D Team",
	"区块链技术公司":   "A Blockchain Company",
	"生物科技实验室":   "A Biotech Laboratory",
	"无人机研发中心":   "A Drone R&D Center",
	"智能机器人研究小组": "A Robotics Research Group",
	"可穿戴设备厂商":   "A Wearable Device Maker",
	"AR/VR技术公司": "An AR/VR Company",
	"绿色科技企业":    "A Green Tech Firm",
	"国家博物馆":     "The National Museum",
	"故宫博物院":     "The Palace Museum",
	"中央芭蕾舞团":    "The National Ballet",
	"国家话剧院":     "The National Theatre",
	"中国作家协会":    "The Writers Association",
	"国际电影节":     "An International Film Festival",
	"世界文化遗产委员会": "The World Heritage Committee",
	"传统艺术节":     "A Traditional Arts Festival",
	"民族音乐团体":    "A Folk Music Ensemble",
	"现代艺术展览":    "A Modern Art Exhibition",
	"文学奖评选委员会":  "A Literary Prize Committee",
	"考古发掘团队":    "An Archaeology Team",
	"非物质文化遗产保护中心": "The Intangible Heritage Center",
	"文化交流协会":       "A Cultural Exchange Association",
	"影视制作公司":       "A Film Production Company",
	"出版集团":         "A Publishing Group",
	"国家气象局":        "The National Weather Service",
	"中国气象局":        "The China Meteorological Administration",
	"台风预警中心":       "The Typhoon Warning Center",
	"暴雨监测站":        "A Rainstorm Monitoring Station",
	"高温预警部门":       "The Heat Warning Department",
	"寒潮预报中心":       "The Cold Wave Forecast Center",
	"沙尘暴监测网络":      "The Sandstorm Monitoring Network",
	"雷电防护中心":       "The Lightning Protection Center",
	"空气质量监测站":      "An Air Quality Monitoring Station",
	"气候变化研究中心":     "The Climate Change Research Center",
	"防洪抗旱指挥部":      "The Flood and Drought Control Headquarters",
	"地质灾害预警系统":     "The Geological Hazard Warning System",
	"极端天气应急响应小组":   "The Extreme Weather Response Team",
	"气象卫星中心":       "The Meteorological Satellite Center",
	"农业气象服务":       "The Agricultural Weather Service",
	"城市气象研究团队":     "An Urban Meteorology Team",
	"中国人民银行":       "The People's Bank of China",
	"中国银保监会":       "The Banking and Insurance Regulator",
	"中国证监会":        "The Securities Regulator",
	"国家统计局":        "The National Bureau of Statistics",
	"世界银行":         "The World Bank",
	"国际货币基金组织":     "The IMF",
	"亚洲开发银行":       "The Asian Development Bank",
	"大型国企":         "A Major State-Owned Enterprise",
	"跨国公司":         "A Multinational Corporation",
	"金融市场监管机构":     "A Financial Market Regulator",
	"国际贸易组织":       "An International Trade Organization",
	"房地产市场研究中心":    "A Real Estate Research Center",
	"股市分析机构":       "A Stock Market Research Firm",
	"投资银行":         "An Investment Bank",
	"经济研究智库":       "An Economic Think Tank",
}

var actionTranslations = map[string]string{
	"发布重要政策":   "Releases a Major Policy",
	"召开高层会议":   "Convenes a High-Level Meeting",
	"签署合作协议":   "Signs a Cooperation Agreement",
	"发表重要讲话":   "Delivers a Key Speech",
	"提出新法案":    "Proposes a New Bill",
	"举行外交会谈":   "Holds Diplomatic Talks",
	"回应国际关切":   "Responds to International Concerns",
	"调整外交政策":   "Adjusts Foreign Policy",
	"部署重要改革":   "Launches Key Reforms",
	"宣布人事任命":   "Announces Appointments",
	"启动特别调查":   "Opens a Special Investigation",
	"通过重大决议":   "Passes a Major Resolution",
	"举办国际峰会":   "Hosts an International Summit",
	"发布外交声明":   "Issues a Diplomatic Statement",
	"应对国际危机":   "Responds to an International Crisis",
	"推动区域合作":   "Promotes Regional Cooperation",
	"发布重大科技成果": "Unveils a Major Breakthrough",
	"研发新技术":    "Develops New Technology",
	"推出创新产品":   "Launches an Innovative Product",
	"突破技术瓶颈":   "Clears a Technical Bottleneck",
	"成立联合实验室":  "Founds a Joint Laboratory",
	"获得重大专利":   "Wins a Key Patent",
	"发布行业标准":   "Publishes an Industry Standard",
	"完成技术升级":   "Completes a Technology Upgrade",
	"举办科技展览":   "Hosts a Tech Expo",
	"开展国际合作":   "Starts International Collaboration",
	"投资研发项目":   "Invests in R&D Projects",
	"应用新技术":    "Deploys New Technology",
	"宣布技术路线图":  "Announces a Technology Roadmap",
	"解决关键技术难题": "Solves a Critical Technical Problem",
	"发布研究报告":   "Releases a Research Report",
	"获得科技奖项":   "Receives a Science Award",
	"举办文化节":    "Hosts a Culture Festival",
	"开展国际交流":   "Starts an International Exchange",
	"发布艺术作品":   "Presents New Artwork",
	"举行文化遗产保护活动": "Holds a Heritage Preservation Event",
	"举办艺术节":      "Hosts an Arts Festival",
	"出版文学作品":     "Publishes Literary Works",
	"举办体育赛事":     "Hosts a Sports Event",
	"进行文化产业投资":   "Invests in Cultural Industries",
	"开展学术研讨":     "Convenes an Academic Symposium",
	"举办国际电影展":    "Hosts an International Film Exhibition",
	"举办音乐会":      "Stages a Concert",
	"推出文化品牌":     "Launches a Cultural Brand",
	"启动文化工程":     "Starts a Cultural Project",
	"组织文化论坛":     "Organizes a Culture Forum",
	"举办艺术展览":     "Opens an Art Exhibition",
	"设立文化奖项":     "Establishes a Culture Prize",
	"发布天气预报":     "Issues a Weather Forecast",
	"发出灾害预警":     "Issues a Disaster Warning",
	"启动应急响应":     "Activates an Emergency Response",
	"监测极端天气":     "Monitors Extreme Weather",
	"发布高温预警":     "Issues a Heat Warning",
	"发布暴雨预警":     "Issues a Rainstorm Warning",
	"发布台风预警":     "Issues a Typhoon Warning",
	"发布寒潮预警":     "Issues a Cold Wave Warning",
	"评估灾害影响":     "Assesses Disaster Impact",
	"提供气象服务":     "Provides Weather Services",
	"研究气候变化":     "Studies Climate Change",
	"发布空气质量报告":   "Releases an Air Quality Report",
	"开展气象科普":     "Runs Weather Science Outreach",
	"预测天气趋势":     "Forecasts Weather Trends",
	"更新气象数据":     "Updates Weather Data",
	"分析气象灾害":     "Analyzes Weather Hazards",
	"发布经济数据":     "Releases Economic Data",
	"调整货币政策":     "Adjusts Monetary Policy",
	"推出经济计划":     "Unveils an Economic Plan",
	"公布财政预算":     "Publishes the Fiscal Budget",
	"发布行业报告":     "Releases an Industry Report",
	"调整利率政策":     "Adjusts Interest Rate Policy",
	"吸引投资":       "Attracts New Investment",
	"促进贸易合作":     "Promotes Trade Cooperation",
	"应对市场波动":     "Responds to Market Volatility",
	"发布消费指数":     "Releases a Consumption Index",
	"优化营商环境":     "Improves the Business Climate",
	"推动经济转型":     "Drives Economic Transition",
	"评估经济形势":     "Assesses Economic Conditions",
	"推出刺激政策":     "Launches Stimulus Measures",
	"发布就业数据":     "Releases Employment Figures",
	"应对通胀压力":     "Tackles Inflation Pressure",
}

var sourceTranslations = map[string]string{
	"人民日报":   "People's Daily",
	"新华社":    "Xinhua News Agency",
	"中央电视台":  "CCTV",
	"光明日报":   "Guangming Daily",
	"经济日报":   "Economic Daily",
	"中国日报":   "China Daily",
	"科技日报":   "Science and Technology Daily",
	"中国青年报":  "China Youth Daily",
	"环球时报":   "Global Times",
	"法制日报":   "Legal Daily",
	"澎湃新闻":   "The Paper",
	"界面新闻":   "Jiemian News",
	"财新网":    "Caixin",
	"凤凰网":    "Phoenix News",
	"南方周末":   "Southern Weekly",
	"第一财经":   "Yicai",
	"路透社":    "Reuters",
	"美联社":    "Associated Press",
	"法新社":    "AFP",
	"彭博社":    "Bloomberg",
	"华尔街日报":  "The Wall Street Journal",
	"金融时报":   "Financial Times",
	"纽约时报":   "The New York Times",
	"华盛顿邮报":  "The Washington Post",
	"卫报":     "The Guardian",
	"经济学人":   "The Economist",
	"BBC新闻":  "BBC News",
	"半岛电视台":  "Al Jazeera",
	"今日俄罗斯":  "RT",
	"亚洲新闻台":  "Channel NewsAsia",
}

func subjectEnglish(s string) string { return translate(subjectTranslations, s) }
func actionEnglish(s string) string  { return translate(actionTranslations, s) }
func sourceEnglish(s string) string  { return translate(sourceTranslations, s) }

func translate(m map[string]string, s string) string {
	if v, ok := m[s]; ok {
		return v
	}
	return s
}
