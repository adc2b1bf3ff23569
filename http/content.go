package http

import "fmt"

const disclaimerMarkdown = `**⚠️ IMPORTANT DISCLAIMER**

**1. Educational Use Only (Global):** This tool is designed strictly for educational and informational purposes. The calculations provided are based on general financial rules of thumb and do not constitute specific investment advice, financial planning, or a recommendation to buy/sell any financial instruments.

**2. SEBI Disclosure (For Indian Users):** I am **not** a SEBI Registered Investment Advisor (RIA). No content on this application should be construed as investment advice under SEBI (Investment Advisers) Regulations, 2013. Please consult a qualified financial professional before making any financial decisions.
`

func welcomeMarkdown(currency string) string {
	return fmt.Sprintf(`### 👋 Welcome!

Select a tool from the sidebar to start planning your financial future.

**Current Currency:** **%s** (Change in sidebar)

**💡 Quick Links:**

* 🚗 [Car Buying Planner](?tool=car)
* 🏖️ [Retirement Planner](?tool=retirement)
* 📈 [Doubling Rule](?tool=doubling)
`, currency)
}
