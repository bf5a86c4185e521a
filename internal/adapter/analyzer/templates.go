package analyzer

import "github-value-tracker/internal/domain"

// 预设分析模板，基于常见开源商业项目的模式
// 每次调用返回新对象，调用方可以随意修改

func workflowAutomation() *domain.Analysis {
	return &domain.Analysis{
		MarketProblem: domain.Bilingual{
			En: "Automates repetitive work for businesses and individuals by connecting different APIs and services",
			Zh: "解决企业和个人的重复性工作自动化问题，连接不同的API和服务",
		},
		UserCatalyst: domain.Bilingual{
			En: "A no-code/low-code tool that lets non-technical users build complex workflows and save significant time",
			Zh: "无代码/低代码解决方案，让非技术人员也能创建复杂的工作流程，节省大量时间",
		},
		DeveloperRetention: domain.Bilingual{
			En: "The workflow automation market is huge, with a clear commercialization path and enterprise demand driving development",
			Zh: "工作流自动化市场巨大，有明确的商业化路径和企业需求驱动持续开发",
		},
		RevenueGeneration: domain.RevenueGeneration{
			Level: domain.DifficultyMedium,
			Pathways: domain.BilingualList{
				En: []string{"Cloud SaaS subscriptions", "Enterprise services", "Template marketplace", "Training and consulting"},
				Zh: []string{"云端 SaaS 订阅", "企业服务", "模板市场", "培训咨询"},
			},
			Challenges: domain.Bilingual{
				En: "Requires deep understanding of business processes and faces strong competitors such as Zapier",
				Zh: "需要深度理解业务流程，竞争激烈（Zapier等）",
			},
		},
		CompetitiveMoat: &domain.Bilingual{
			En: "Hundreds of maintained integrations and a self-hosting option that closed SaaS rivals cannot offer",
			Zh: "数百个持续维护的集成，以及闭源 SaaS 对手无法提供的自部署能力",
		},
		GlobalReadiness: &domain.Bilingual{
			En: "Self-hosted deployment fits data-residency requirements across regions",
			Zh: "自部署模式满足各地区的数据驻留要求",
		},
	}
}

func backendAsService() *domain.Analysis {
	return &domain.Analysis{
		MarketProblem: domain.Bilingual{
			En: "Simplifies backend development with ready-to-use services for database, auth and APIs",
			Zh: "简化后端开发复杂度，提供即开即用的后端服务（数据库、认证、API等）",
		},
		UserCatalyst: domain.Bilingual{
			En: "Dramatically lowers the barrier to full-stack development so teams ship MVPs fast and focus on the frontend",
			Zh: "极大降低全栈开发门槛，快速构建MVP，专注前端和业务逻辑",
		},
		DeveloperRetention: domain.Bilingual{
			En: "The cloud services market keeps growing and open source plus hosted cloud is a proven model (e.g. Firebase)",
			Zh: "云服务市场高速增长，开源+商业云服务模式被验证成功（如Firebase）",
		},
		RevenueGeneration: domain.RevenueGeneration{
			Level: domain.DifficultyHigh,
			Pathways: domain.BilingualList{
				En: []string{"Managed hosting", "Enterprise self-hosted deployment", "Technical consulting"},
				Zh: []string{"托管服务", "企业私有化部署", "技术咨询"},
			},
			Challenges: domain.Bilingual{
				En: "Needs heavy cloud infrastructure investment and competes with AWS and Google",
				Zh: "需要强大的云基础设施投入，与AWS/Google竞争",
			},
		},
		CompetitiveMoat: &domain.Bilingual{
			En: "No vendor lock-in: built on standard open components that developers already trust",
			Zh: "没有厂商锁定：基于开发者已经信任的标准开源组件",
		},
	}
}

func headlessCMS() *domain.Analysis {
	return &domain.Analysis{
		MarketProblem: domain.Bilingual{
			En: "Decouples content management from presentation so developers can choose any frontend stack",
			Zh: "解耦内容管理和前端展示，让开发者自由选择前端技术栈",
		},
		UserCatalyst: domain.Bilingual{
			En: "Developer friendly and API first, delivering content to many channels with more flexibility than a traditional CMS",
			Zh: "开发者友好，API优先，支持多端内容分发，比传统CMS更灵活",
		},
		DeveloperRetention: domain.Bilingual{
			En: "Content management demand never goes away, headless is the trend, and the SaaS model is clear",
			Zh: "内容管理需求永恒存在，Headless架构是趋势，有清晰的SaaS商业模式",
		},
		RevenueGeneration: domain.RevenueGeneration{
			Level: domain.DifficultyMedium,
			Pathways: domain.BilingualList{
				En: []string{"Hosted cloud plans", "Plugin ecosystem", "Custom development"},
				Zh: []string{"云托管套餐", "插件生态", "定制开发"},
			},
			Challenges: domain.Bilingual{
				En: "Fierce competition from commercial rivals such as Contentful",
				Zh: "竞争激烈（Contentful等商业对手）",
			},
		},
		GlobalReadiness: &domain.Bilingual{
			En: "Built-in internationalization makes multi-language content a first-class feature",
			Zh: "内置国际化，多语言内容是一等功能",
		},
	}
}

func productAnalytics() *domain.Analysis {
	return &domain.Analysis{
		MarketProblem: domain.Bilingual{
			En: "Open-source product analytics and user behavior insight replacing expensive commercial tools",
			Zh: "提供开源的用户行为分析和产品数据洞察，替代昂贵的商业分析工具",
		},
		UserCatalyst: domain.Bilingual{
			En: "Privacy friendly, self-hostable, full-featured and far cheaper than premium analytics suites",
			Zh: "数据隐私友好，可自部署，功能完整，成本远低于Google Analytics Pro等",
		},
		DeveloperRetention: domain.Bilingual{
			En: "Analytics is a must-have for every product and privacy regulation makes open source more attractive",
			Zh: "数据分析是所有产品的刚需，隐私合规趋势增强了开源方案的吸引力",
		},
		RevenueGeneration: domain.RevenueGeneration{
			Level: domain.DifficultyMedium,
			Pathways: domain.BilingualList{
				En: []string{"Usage-based cloud hosting", "Enterprise features", "Data consulting"},
				Zh: []string{"按量计费的云托管", "企业功能", "数据咨询服务"},
			},
			Challenges: domain.Bilingual{
				En: "Competes with the free tier of Google Analytics",
				Zh: "与Google Analytics免费版竞争",
			},
		},
		CompetitiveMoat: &domain.Bilingual{
			En: "An all-in-one suite (analytics, session replay, feature flags, experiments) on data the customer owns",
			Zh: "一体化套件（分析、会话回放、功能开关、实验），数据归客户所有",
		},
		GlobalReadiness: &domain.Bilingual{
			En: "Self-hosting and regional clouds help meet GDPR and similar regulations",
			Zh: "自部署和区域云帮助满足 GDPR 等法规",
		},
	}
}

func noCodeDatabase() *domain.Analysis {
	return &domain.Analysis{
		MarketProblem: domain.Bilingual{
			En: "Lets non-technical users build and manage database applications, replacing Excel or Airtable",
			Zh: "让非技术用户也能创建和管理复杂的数据库应用，如替代Excel/Airtable",
		},
		UserCatalyst: domain.Bilingual{
			En: "Intuitive interface, low learning curve, powerful features, open source and free",
			Zh: "界面直观，学习成本低，功能强大，开源免费",
		},
		DeveloperRetention: domain.Bilingual{
			En: "The no-code market is booming and enterprise digital transformation demand is strong",
			Zh: "无代码工具市场爆发式增长，企业数字化转型需求旺盛",
		},
		RevenueGeneration: domain.RevenueGeneration{
			Level: domain.DifficultyMedium,
			Pathways: domain.BilingualList{
				En: []string{"Enterprise edition", "Self-hosted deployment", "Plugin marketplace"},
				Zh: []string{"企业版功能", "私有化部署", "插件市场"},
			},
			Challenges: domain.Bilingual{
				En: "Competes with mature products such as Airtable",
				Zh: "与Airtable等成熟产品竞争",
			},
		},
	}
}

func reactFramework() *domain.Analysis {
	return &domain.Analysis{
		MarketProblem: domain.Bilingual{
			En: "Simplifies React development with a production-ready full-stack solution",
			Zh: "简化React应用开发，提供生产就绪的全栈解决方案",
		},
		UserCatalyst: domain.Bilingual{
			En: "Excellent developer experience, strong performance, a rich ecosystem and mature enterprise features",
			Zh: "开发体验极佳，性能优秀，生态丰富，企业级特性完善",
		},
		DeveloperRetention: domain.Bilingual{
			En: "Frontend frameworks are infrastructure and a huge developer ecosystem brings commercial value and influence",
			Zh: "前端框架是基础设施，巨大的开发者生态带来商业价值和技术影响力",
		},
		RevenueGeneration: domain.RevenueGeneration{
			Level: domain.DifficultyHigh,
			Pathways: domain.BilingualList{
				En: []string{"Hosting platform (e.g. Vercel)", "Training", "Consulting"},
				Zh: []string{"部署平台（如Vercel）", "培训", "咨询"},
			},
			Challenges: domain.Bilingual{
				En: "The framework itself is hard to monetize directly; revenue comes from surrounding services and influence",
				Zh: "框架本身难以直接盈利，主要通过周边服务以及企业影响力获得收益",
			},
		},
		CompetitiveMoat: &domain.Bilingual{
			En: "Default choice for new React projects, reinforced by documentation, templates and hiring market",
			Zh: "新 React 项目的默认选择，文档、模板和招聘市场不断强化这一地位",
		},
		GlobalReadiness: &domain.Bilingual{
			En: "Built-in i18n routing and edge deployment serve global audiences",
			Zh: "内置国际化路由和边缘部署，面向全球用户",
		},
	}
}

func graphqlEngine() *domain.Analysis {
	return &domain.Analysis{
		MarketProblem: domain.Bilingual{
			En: "Generates GraphQL APIs automatically, simplifying backend API development and data querying",
			Zh: "自动生成GraphQL API，简化后端API开发和数据查询复杂度",
		},
		UserCatalyst: domain.Bilingual{
			En: "Very high development velocity, type safety, realtime subscriptions and less frontend/backend coordination",
			Zh: "开发效率极高，类型安全，实时订阅，减少前后端沟通成本",
		},
		DeveloperRetention: domain.Bilingual{
			En: "API development is a basic need of every application and GraphQL adoption keeps growing",
			Zh: "API开发是所有应用的基础需求，GraphQL采用率持续增长",
		},
		RevenueGeneration: domain.RevenueGeneration{
			Level: domain.DifficultyMedium,
			Pathways: domain.BilingualList{
				En: []string{"Cloud service", "Enterprise support", "Professional training"},
				Zh: []string{"云服务", "企业支持", "专业培训"},
			},
			Challenges: domain.Bilingual{
				En: "Technically complex and aimed mainly at developers",
				Zh: "技术相对复杂，目标用户主要是开发者",
			},
		},
	}
}
