package prompt

import (
	"fmt"
	"strings"
)

const analysisTemplate = `你是一位精通「行為金融學」與「基本面分析」的資深投資顧問。請分析台股 "%s"。
請查詢最新的每股淨值 (BVPS)、目前股價、幣別、歷史 PB 分位數 (25th, 50th, 75th, 90th)、連續配息年數、現金殖利率、ROE (最新與近 3 年平均) 以及 20 日均量。
chartData 請提供近期的股價與對應的 PB 河流價 (river25/50/75/90)，依日期由舊到新排列。
narrative 請以專業口吻撰寫：市場矛盾點 (conflictReason)、主角/事件/行動 (story) 與展望 (outlook)。
只輸出一個 JSON 物件，不要加上任何說明文字。`

// Analysis builds the single-stock instruction for an already formatted ticker.
func Analysis(ticker string) string {
	return fmt.Sprintf(analysisTemplate, ticker)
}

const longTermRules = `
長期投資核心篩選邏輯 (必須嚴格執行)：
1. 月線層級，趨勢向上且均線收斂：
   - 月線 MA5 與 MA20 方向皆向上。
   - MA5 > MA20 且 (MA5 - MA20) / MA20 < 5%，差距大於 5% 視為發散，不予錄取。
2. 日線層級，回測買點：
   - 收盤價 < 過去 20 日最高價 (已有適度拉回)。
   - 收盤價 > 日線 20MA，且與 20MA 的距離在 5% 以內。
3. 籌碼篩選：
   - 散戶定義為持股 < 50 張 (50,000 股) 的股東。
   - 本週持股 < 50 張的總人數必須小於上週 (retailCountCurrent < retailCountPrevious)。
   - 排除散戶人數增加的標的。`

const scanTemplate = `你是一位專業的台股量化選股專家。請針對 %s 進行全盤掃描。
%s

請回傳 JSON 格式列表 (results)，並針對每一檔標的填寫以下說明欄位：
- monthlyTrendDesc: 簡述月線收斂狀態 (20 字內)。
- dailyPullbackDesc: 簡述日線拉回狀態 (20 字內)。
- isLongTermInvest: 同時符合月線收斂與日線回測條件才標記為 true。
- isGreenZone: 目前 PB 低於便宜門檻 (greenThreshold) 時為 true。

請提供 8-10 檔目前最符合條件的標的，避免回應過長。每一檔都必須檢查集保戶股權分散表，確認持股小於 50 張的人數是否減少。`

// FinancialScan builds the financial-sector scan, or the broad-market
// long-term scan when broadMarket is set.
func FinancialScan(broadMarket bool, financialUniverse []string) string {
	if broadMarket {
		return fmt.Sprintf(scanTemplate, "全台股市場 (篩選具有高流動性與強勁趨勢之標的)", longTermRules)
	}
	scope := fmt.Sprintf("金融板塊 [%s]", strings.Join(financialUniverse, ", "))
	return fmt.Sprintf(scanTemplate, scope, "")
}

const marketTemplate = `請分析台股大盤及核心 ETF：[%s]。重點在於季線乖離與位階。
- priceLevel: 0-100 的位階 (0 為崩盤區，50-70 為季線支撐區，100 為過熱)。
- deviationFromQuarterly / deviationFromYearly: 與季線 (約 60 日) 及年線 (約 240 日) 的乖離百分比。
- status: 只能是 crisis_buy、bull_pullback、neutral、overheated 其中之一。
結果放在 results 陣列中。`

func MarketStatus(tickers []string) string {
	return fmt.Sprintf(marketTemplate, strings.Join(tickers, ", "))
}

const newsPrompt = `你是一位崇尚「題材炒作」與「資金流向」的市場消息靈通人士。你的座右銘是：「風口來了，豬都會飛。」
請搜尋最近一個月內台股市場最熱門的「八卦」、「題材」、「籌碼動向」與「社群熱議」話題。

任務 1: 新聞清單 (news)，整理出 6 則最符合「風口」的消息。
重點關注：
1. 新聞標題與市場情緒：具爆發力的題材。
2. 法人籌碼：外資、投信異常買賣超的標的。
3. 社群熱度：PTT 股版、同學會討論度最高的股票。
4. 產業行事曆：法說會、展覽、新產品發布。

任務 2: 市場脈動總結 (pulse)
- trendSummary: 50 字內總結目前主流資金流向與整體氣氛。
- hotSectors: 歸納 3-4 個最熱門的產業板塊，每個板塊給予 0-100 的熱度評分 (intensity) 與理由 (reason)。

欄位說明：
- title: 吸引眼球的標題。
- summary: 簡述資金流向與炒作理由 (50 字內)。
- category: 必須為 Hype (題材)、Chips (籌碼)、Community (社群)、Event (行事曆)、Policy (政策) 其中之一。
- sentiment: positive (偏多)、negative (偏空)、neutral (觀望)。
- impactLevel: high、medium、low。
- keywords: 相關熱門關鍵字。
- relatedTickers: 相關個股代號。`

func MarketNews() string {
	return newsPrompt
}
