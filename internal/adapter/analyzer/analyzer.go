package analyzer

import (
	"strings"

	"github-value-tracker/internal/domain"
)

// popularStars 超过这个 star 数时通用模板会强调社区规模
const popularStars = 50000

// rule 一条模板匹配规则，按顺序求值，第一条命中的生效
type rule struct {
	name     string
	match    func(name, desc string) bool
	template func(repo *domain.Repository) *domain.Analysis
}

func nameContains(keyword string) func(name, desc string) bool {
	return func(name, _ string) bool { return strings.Contains(name, keyword) }
}

func descContains(keyword string) func(name, desc string) bool {
	return func(_, desc string) bool { return strings.Contains(desc, keyword) }
}

func always(_, _ string) bool { return true }

// fixed 不依赖仓库内容的模板
func fixed(template func() *domain.Analysis) func(*domain.Repository) *domain.Analysis {
	return func(*domain.Repository) *domain.Analysis { return template() }
}

// rules 已知项目关键词 -> 模板，最后一条通用分析兜底
var rules = []rule{
	{name: "workflow_automation", match: nameContains("n8n"), template: fixed(workflowAutomation)},
	{name: "backend_as_service", match: nameContains("supabase"), template: fixed(backendAsService)},
	{name: "headless_cms", match: nameContains("strapi"), template: fixed(headlessCMS)},
	{name: "analytics", match: nameContains("posthog"), template: fixed(productAnalytics)},
	{name: "no_code_database", match: nameContains("nocodb"), template: fixed(noCodeDatabase)},
	{name: "react_framework", match: nameContains("next"), template: fixed(reactFramework)},
	{name: "backend_as_service", match: nameContains("pocketbase"), template: fixed(backendAsService)},
	{name: "backend_as_service", match: nameContains("appwrite"), template: fixed(backendAsService)},
	{name: "graphql_engine", match: descContains("graphql"), template: fixed(graphqlEngine)},
	{name: "generic", match: always, template: genericAnalysis},
}

// Annotator 实现了 port.Annotator 接口
// 纯函数：同样的输入永远得到同样的文案，不参与评分
type Annotator struct{}

// NewAnnotator 创建分析师
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// Analyze 按规则表选模板
func (a *Annotator) Analyze(repo *domain.Repository, metrics *domain.DerivedMetrics) *domain.Analysis {
	if repo == nil {
		return nil
	}
	return matchRule(repo).template(repo)
}

// TemplateName 命中的模板名，通用分析返回 "generic"
func (a *Annotator) TemplateName(repo *domain.Repository) string {
	if repo == nil {
		return ""
	}
	return matchRule(repo).name
}

// matchRule 规则表以 always 结尾，一定有命中
func matchRule(repo *domain.Repository) rule {
	name := strings.ToLower(repo.Name)
	desc := strings.ToLower(repo.Description)
	for _, r := range rules {
		if r.match(name, desc) {
			return r
		}
	}
	return rules[len(rules)-1]
}

// genericAnalysis 根据描述和 topic 里的类别关键词挑选通用模板的变体
// 后面的类别覆盖前面的：api < dashboard/ui < database
func genericAnalysis(repo *domain.Repository) *domain.Analysis {
	desc := strings.ToLower(repo.Description)
	topics := strings.ToLower(strings.Join(repo.Topics, " "))

	analysis := &domain.Analysis{
		MarketProblem: domain.Bilingual{
			En: "Solves a specific technical problem in the development workflow",
			Zh: "解决开发过程中的特定技术问题",
		},
		UserCatalyst: domain.Bilingual{
			En: "Offers an open-source, free alternative",
			Zh: "提供开源、免费的解决方案",
		},
		DeveloperRetention: domain.Bilingual{
			En: "Continuous improvement driven by technical passion",
			Zh: "技术热情驱动的持续改进",
		},
		RevenueGeneration: domain.RevenueGeneration{
			Level: domain.DifficultyMedium,
			Pathways: domain.BilingualList{
				En: []string{"Hosted service", "Paid support", "Sponsorship"},
				Zh: []string{"托管服务", "付费支持", "赞助"},
			},
			Challenges: domain.Bilingual{
				En: "Requires a deep understanding of target users and a sustainable revenue model",
				Zh: "需要深入理解目标用户需求，建立可持续的盈利模式",
			},
		},
	}

	if strings.Contains(desc, "api") || strings.Contains(topics, "api") {
		analysis.MarketProblem = domain.Bilingual{
			En: "Reduces the complexity of building and integrating APIs",
			Zh: "简化API开发和集成复杂度",
		}
		analysis.UserCatalyst = domain.Bilingual{
			En: "Raises development efficiency and removes repetitive work",
			Zh: "提高开发效率，减少重复工作",
		}
	}

	if strings.Contains(desc, "dashboard") || strings.Contains(desc, "ui") || strings.Contains(topics, "dashboard") {
		analysis.MarketProblem = domain.Bilingual{
			En: "Provides modern user interfaces and data visualization",
			Zh: "提供现代化的用户界面和数据可视化能力",
		}
		analysis.UserCatalyst = domain.Bilingual{
			En: "Polished, easy-to-use interface design with a good user experience",
			Zh: "美观易用的界面设计，良好的用户体验",
		}
		analysis.RevenueGeneration.Level = domain.DifficultyLow
		analysis.RevenueGeneration.Pathways = domain.BilingualList{
			En: []string{"Paid components", "Custom development", "Design services"},
			Zh: []string{"付费组件", "定制开发", "设计服务"},
		}
		analysis.RevenueGeneration.Challenges = domain.Bilingual{
			En: "UI libraries face fierce competition, but paid components, custom development and design services can generate revenue",
			Zh: "UI库竞争激烈，但可通过付费组件、定制开发、设计服务盈利",
		}
	}

	if strings.Contains(desc, "database") || strings.Contains(topics, "database") {
		analysis.MarketProblem = domain.Bilingual{
			En: "Simplifies data storage and management",
			Zh: "简化数据存储和管理的复杂性",
		}
		analysis.UserCatalyst = domain.Bilingual{
			En: "A high-performance, easy-to-deploy, full-featured database solution",
			Zh: "高性能、易部署、功能完整的数据库解决方案",
		}
		analysis.RevenueGeneration.Level = domain.DifficultyHigh
		analysis.RevenueGeneration.Pathways = domain.BilingualList{
			En: []string{"Managed cloud database", "Enterprise license", "Support contracts"},
			Zh: []string{"云托管数据库", "企业授权", "技术支持合同"},
		}
		analysis.RevenueGeneration.Challenges = domain.Bilingual{
			En: "Database technology demands long-term investment, but the enterprise market is highly valuable",
			Zh: "数据库技术要求极高，需要长期投入，但企业级市场价值巨大",
		}
	}

	if repo.StargazersCount > popularStars {
		analysis.UserCatalyst.En += ", backed by a large community and a mature ecosystem"
		analysis.UserCatalyst.Zh += "，拥有庞大的社区支持和成熟的生态"
		analysis.DeveloperRetention = domain.Bilingual{
			En: "Influence and latent commercial value from a large user base drive sustained investment",
			Zh: "大规模用户群体带来的影响力和潜在商业价值驱动持续投入",
		}
		analysis.RevenueGeneration.Challenges.En += "; the existing audience lowers the cost of reaching paying customers"
		analysis.RevenueGeneration.Challenges.Zh += "；现有用户规模降低了获取付费客户的成本"
	}

	return analysis
}
