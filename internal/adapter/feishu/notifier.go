package feishu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github-value-tracker/internal/common"
	"github-value-tracker/internal/domain"

	"github.com/sirupsen/logrus"
)

const defaultTimeout = 10 * time.Second

type Notifier struct {
	webhookURL string
	client     *http.Client
}

func NewNotifier(webhook string, logger logrus.FieldLogger) *Notifier {
	if webhook == "" {
		logger.Warn("⚠️ 警告: 飞书 Webhook 为空，推送功能将无法工作！")
	}
	return &Notifier{
		webhookURL: webhook,
		client:     &http.Client{Timeout: defaultTimeout},
	}
}

// NotifyDiscoveries 把一次新项目发现的结果合成一张飞书卡片 (Schema 2.0)
func (n *Notifier) NotifyDiscoveries(ctx context.Context, feed *domain.DiscoveriesFeed) error {
	if n.webhookURL == "" {
		return common.NewError(common.ErrCodeInvalidInput, "Webhook URL 为空")
	}
	if feed == nil || len(feed.Discoveries) == 0 {
		return nil
	}

	body, err := json.Marshal(discoveryCard(feed))
	if err != nil {
		return common.WrapError(common.ErrCodeInternal, "构造飞书卡片失败", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return common.WrapError(common.ErrCodeInternal, "构造飞书请求失败", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return common.WrapError(common.ErrCodeUpstream, "发送请求失败", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return common.NewError(common.ErrCodeUpstream, fmt.Sprintf("飞书 API 报错: 状态码 %d", resp.StatusCode))
	}
	return nil
}

func discoveryCard(feed *domain.DiscoveriesFeed) map[string]interface{} {
	title := fmt.Sprintf("💎 发现 %d 个高价值项目", len(feed.Discoveries))
	if feed.DemoMode {
		title += " (演示数据)"
	}

	elements := make([]map[string]interface{}, 0, len(feed.Discoveries)+1)
	elements = append(elements, map[string]interface{}{
		"tag":       "markdown",
		"content":   fmt.Sprintf("**来源:** %s  |  **候选总数:** %d", feed.Source, feed.Total),
		"text_size": "normal",
	})
	for _, d := range feed.Discoveries {
		elements = append(elements, map[string]interface{}{
			"tag":       "markdown",
			"content":   entryMarkdown(d),
			"text_size": "normal",
		})
	}

	return map[string]interface{}{
		"msg_type": "interactive",
		"card": map[string]interface{}{
			"schema": "2.0",
			"config": map[string]interface{}{
				"update_multi": true,
			},
			"header": map[string]interface{}{
				"title": map[string]interface{}{
					"tag":     "plain_text",
					"content": title,
				},
				"template": "blue",
			},
			"body": map[string]interface{}{
				"direction": "vertical",
				"elements":  elements,
			},
		},
	}
}

func entryMarkdown(d *domain.DiscoveryEntry) string {
	repo := d.Project.Project
	var sb strings.Builder
	fmt.Fprintf(&sb, "**[%s](%s)**  🏆 %d/100  |  %s\n", repo.FullName, repo.HTMLURL, d.Project.ValueScore, d.Reason)
	fmt.Fprintf(&sb, "⭐ %d  |  🍴 %d  |  👥 %d", repo.StargazersCount, repo.ForksCount, d.Project.ContributorsCount)
	if g := d.GrowthIndicators; g != nil {
		fmt.Fprintf(&sb, "  |  📈 +%d stars/7d", g.StarsAdded7d)
		if len(g.TrendingTopics) > 0 {
			fmt.Fprintf(&sb, "  |  🏷 %s", strings.Join(g.TrendingTopics, ", "))
		}
	}
	if repo.Description != "" {
		fmt.Fprintf(&sb, "\n%s", repo.Description)
	}
	return sb.String()
}
