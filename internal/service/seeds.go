package service

// DefaultSeeds 精选的高价值种子仓库，趋势扫描不足时用来补齐
var DefaultSeeds = []string{
	"vercel/next.js",
	"facebook/react",
	"vuejs/vue",
	"angular/angular",
	"sveltejs/svelte",
	"remix-run/remix",
	"nuxt/nuxt",
	"vitejs/vite",
	"webpack/webpack",
	"rollup/rollup",
	"supabase/supabase",
	"appwrite/appwrite",
	"pocketbase/pocketbase",
	"firebase/firebase-js-sdk",
	"prisma/prisma",
	"strapi/strapi",
	"directus/directus",
	"hasura/graphql-engine",
	"nocodb/nocodb",
	"airtable/airtable.js",
	"microsoft/TypeScript",
	"openai/openai-python",
	"langchain-ai/langchain",
	"microsoft/vscode",
	"huggingface/transformers",
	"ollama/ollama",
	"automatic1111/stable-diffusion-webui",
	"comfyanonymous/ComfyUI",
	"n8n-io/n8n",
	"zapier/zapier-platform",
	"huginn/huginn",
	"activepieces/activepieces",
	"windmill-labs/windmill",
	"temporal-io/temporal",
	"airflow/airflow",
	"docker/compose",
	"kubernetes/kubernetes",
	"vercel/turbo",
	"netlify/netlify-cms",
	"serverless/serverless",
	"pulumi/pulumi",
	"terraform-providers/terraform-provider-aws",
	"PostHog/posthog",
	"plausible/analytics",
	"umami-software/umami",
	"grafana/grafana",
	"elastic/elasticsearch",
	"prometheus/prometheus",
	"shopify/shopify-cli",
	"medusajs/medusa",
	"commercetools/commercetools-sdk-typescript",
	"sanity-io/sanity",
	"contentful/contentful.js",
	"ghost/ghost",
	"figma/plugin-samples",
	"linear/linear",
	"notion-enhancer/notion-enhancer",
	"logseq/logseq",
	"obsidianmd/obsidian-releases",
	"codeium/codeium",
	"expo/expo",
	"facebook/react-native",
	"ionic-team/ionic-framework",
	"flutter/flutter",
	"capacitor-community/proposals",
	"ethereum/ethereum-org-website",
	"MetaMask/metamask-extension",
	"rainbow-me/rainbow",
	"Uniswap/interface",
	"pancakeswap/pancake-frontend",
	"microsoft/playwright",
	"cypress-io/cypress",
	"storybookjs/storybook",
	"facebook/jest",
	"eslint/eslint",
	"prettier/prettier",
	"apache/superset",
	"metabase/metabase",
	"grafana/grafana",
	"observablehq/plot",
	"recharts/recharts",
	"d3/d3",
	"auth0/auth0.js",
	"supertokens/supertokens-core",
	"ory/kratos",
	"clerk/javascript",
	"firebase/firebase-admin-node",
	"video-dev/hls.js",
	"videojs/video.js",
	"mux/mux-node-sdk",
	"agora-io/agora-rtc-sdk-ng",
	"godotengine/godot",
	"unity3d-jp/unitychan-crs",
	"pixijs/pixijs",
	"photonstorm/phaser",
	"microsoft/vscode-extension-samples",
	"raycast/extensions",
	"discord/discord-api-docs",
	"slack-samples/bolt-js-getting-started-app",
	"twilio/twilio-node",
}
