package valueobjects

const photocopyPrompt = "Add realistic photocopy artifacts, grain, and slight distortions to this image, making it look like a very old, faded photocopy."

const faxPrompt = `Add realistic fax artifacts, grain, and slight distortions to this image, making it look like a fax machine output.

When a document is sent over a fax machine, a series of steps involving scanning, data compression, and transmission over a phone line can introduce a number of distinctive visual imperfections, known as artifacts. These are rarely seen in modern digital documents (like PDFs or JPEGs) unless they are intentionally designed to mimic a fax.

Here are the typical artifacts you see on a faxed document:

1. Compression Artifacts
Fax machines use a form of lossy compression to reduce the amount of data that needs to be transmitted over a telephone line. This often leads to:

Blockiness or Pixelation: Especially noticeable on images or areas with a lot of detail, the image may appear to be made up of small, blurry blocks or squares.

Contouring or Posterization: Gradients or subtle shading can be replaced with distinct bands of a single color (or, in the case of black-and-white faxes, different shades of gray), making the image look like a poster.

2. Signal and Transmission Noise
The analog nature of a fax transmission over a telephone line is susceptible to interference and signal degradation. This creates:

Horizontal Streaks or Lines: These are one of the most classic fax artifacts. A poor connection or line noise can cause the receiving machine to misinterpret the signal for a brief moment, resulting in a thin, solid line or streak across the page.

"Speckles" or "Static": Tiny, random black dots or specks may appear on the white background of the document, and tiny white specks may appear on black text. This is caused by noise on the phone line being misinterpreted as a black pixel.

3. Scanner and Printer-Related Artifacts
The physical components of the sending and receiving fax machines also contribute to the final look of the document:

Smudges and Dirt: If the scanner glass on the sending fax machine is dirty, it can cause black smudges or streaks to appear on the final document, as the dirt is scanned along with the paper. Similarly, a dirty roller can lead to repeated smudges or marks down the page.

Uneven Ink/Toner: The receiving machine's printer may have low toner or an old ink cartridge, leading to faded, streaky, or uneven text and images.

Skewing or Misalignment: The document feeder on the sending machine might not pull the paper straight, resulting in a final document that is noticeably skewed or crooked.

4. Text and Font-Specific Artifacts
Because a fax is essentially a low-resolution bitmap image, text loses its vector-based crispness.

Jagged or "Staircase" Edges: The diagonal or curved lines of letters (like "o," "s," or "r") will appear pixelated, with visible "steps" instead of a smooth curve.

Thickened or "Blobby" Characters: When the text is small, the low resolution can cause the letters to blur together, making them look thicker and less distinct.

Loss of Fine Detail: Thin fonts, serifs, and small punctuation marks can become difficult or impossible to read.

These artifacts are what give a faxed document its distinctive, low-fidelity appearance and are the reason why it's often difficult to read fine print or see details in a faxed image.`
