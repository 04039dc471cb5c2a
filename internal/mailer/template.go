package mailer

import "strings"

// The branded wrapper the hospital sends around every message body. The
// questionnaire link is fixed; only the message paragraph varies.
const bodyTemplate = `
<div style="font-family: Arial, sans-serif; background-color: #f5f5f5; padding: 40px;">
  <table width="100%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.05);">
    <tr>
      <td style="background-color: #4f46e5; padding: 20px; text-align: center; color: white;">
        <h1 style="margin: 0; font-size: 24px;">&#127973; Welcome to Parvathy Hospital</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 30px;">
        <p style="font-size: 16px; color: #333;">Dear Patient,</p>
        <p style="font-size: 16px; color: #333;">{{message}}</p>
        <p style="margin-top: 30px; text-align: center;">
          <a href="https://promwebformslower.onrender.com" style="display: inline-block; background-color: #4f46e5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-size: 16px;">
            Click here to Open The Questionnaire
          </a>
        </p>
      </td>
    </tr>
    <tr>
      <td style="background-color: #f5f5f5; padding: 20px; text-align: center; font-size: 12px; color: #777;">
        &copy;2024 <a href="https://thexolabs.in" style="color: #777; text-decoration: none;">XoLabs.in</a>. All rights reserved.
      </td>
    </tr>
  </table>
</div>
`

func renderBody(message string) string {
	return strings.ReplaceAll(bodyTemplate, "{{message}}", message)
}
